// Package keys derives translation keys for form fields.
//
// Every field of a model.FormModel is described by a tree.Tree holding the
// form node, each ancestor and the field itself. Trees are rendered into
// dotted keys such as
//
//	form.createPet.children.owner.children.email.label
//	form.createPet.children.vaccinations.prototype.children.date.label
//
// Separator, root and the children/prototype segments are configurable
// through Options.
package keys
