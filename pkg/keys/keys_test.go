package keys_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
	"github.com/goliatone/go-formtree/pkg/testsupport"
	"github.com/goliatone/go-formtree/pkg/tree"
)

func TestBuilder_FormKeysPetstore(t *testing.T) {
	builder := keys.NewBuilder(keys.DefaultOptions())

	got, err := builder.FormKeys(testsupport.PetForm())
	if err != nil {
		t.Fatalf("form keys: %v", err)
	}

	label := func(path, key, fallback string) keys.KeyEntry {
		return keys.KeyEntry{Key: key, Path: path, Suffix: keys.SuffixLabel, Fallback: fallback}
	}
	want := []keys.KeyEntry{
		label("", "form.createPet.label", "Create a pet"),
		label("name", "form.createPet.children.name.label", "Name"),
		label("owner", "form.createPet.children.owner.label", "Owner"),
		label("owner.email", "form.createPet.children.owner.children.email.label", "Email"),
		label("owner.fullName", "form.createPet.children.owner.children.fullName.label", "Full Name"),
		label("photoUrls", "form.createPet.children.photoUrls.label", "Photo Urls"),
		label("photoUrls[]", "form.createPet.children.photoUrls.prototype.label", "Photo Urls Item"),
		{Key: "pets.tag.custom", Path: "tag", Suffix: keys.SuffixLabel, Fallback: "Tag", Explicit: true},
		label("vaccinations", "form.createPet.children.vaccinations.label", "Vaccinations"),
		label("vaccinations[]", "form.createPet.children.vaccinations.prototype.label", "Vaccinations Item"),
		label("vaccinations[].date", "form.createPet.children.vaccinations.prototype.children.date.label", "Date"),
		label("vaccinations[].vaccine", "form.createPet.children.vaccinations.prototype.children.vaccine.label", "Vaccine"),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CustomOptions(t *testing.T) {
	builder := keys.NewBuilder(keys.Options{
		OmitRoot:     true,
		Separator:    "/",
		ChildrenKey:  "fields",
		PrototypeKey: "item",
	})

	entry, err := builder.FieldKey(testsupport.PetForm(), "vaccinations[].date", keys.SuffixHelp)
	if err != nil {
		t.Fatalf("field key: %v", err)
	}
	if entry.Key != "createPet/fields/vaccinations/item/fields/date/help" {
		t.Fatalf("unexpected key %q", entry.Key)
	}
}

func TestOptions_NormalizeFillsBlanks(t *testing.T) {
	for _, opts := range []keys.Options{{Root: " form "}, {}, {Separator: " "}} {
		if diff := cmp.Diff(keys.DefaultOptions(), opts.Normalize()); diff != "" {
			t.Fatalf("Normalize(%+v) mismatch (-want +got):\n%s", opts, diff)
		}
	}
}

func TestBuilder_BlankRootKeepsDefaultPrefix(t *testing.T) {
	builder := keys.NewBuilder(keys.Options{Separator: "_"})
	entry, err := builder.FieldKey(testsupport.PetForm(), "owner.email", keys.SuffixLabel)
	if err != nil {
		t.Fatalf("field key: %v", err)
	}
	if entry.Key != "form_createPet_children_owner_children_email_label" {
		t.Fatalf("unexpected key %q", entry.Key)
	}
}

func TestBuilder_KeyStopsAtAbsentSlot(t *testing.T) {
	builder := keys.NewBuilder(keys.DefaultOptions())

	seq := tree.New(&tree.Node{Name: "signup", Kind: tree.NodeKindForm, HasChildren: true})
	seq.AddChild(nil)
	seq.AddChild(&tree.Node{Name: "email", Kind: tree.NodeKindField})

	if got := builder.Key(seq, keys.SuffixLabel); got != "form.signup.label" {
		t.Fatalf("expected traversal to end before the nil slot, got %q", got)
	}
	if seq.Len() != 3 {
		t.Fatalf("expected nil slot to count in length, got %d", seq.Len())
	}
}

func TestBuildTrees_NestedCollections(t *testing.T) {
	form := model.FormModel{
		OperationID: "op",
		Fields: []model.Field{{
			Name: "matrix",
			Type: model.FieldTypeArray,
			Items: &model.Field{
				Name: "matrixItem",
				Type: model.FieldTypeArray,
				Items: &model.Field{
					Name:   "matrixItemItem",
					Type:   model.FieldTypeObject,
					Nested: []model.Field{{Name: "value", Type: model.FieldTypeNumber, Label: "Value"}},
				},
			},
		}},
	}

	entries, err := keys.BuildTrees(form)
	if err != nil {
		t.Fatalf("build trees: %v", err)
	}
	var paths []string
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	if diff := cmp.Diff([]string{"", "matrix", "matrix[]", "matrix[][]", "matrix[][].value"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	got := keys.NewBuilder(keys.DefaultOptions()).Keys(entries)
	want := []string{
		"form.op.label",
		"form.op.children.matrix.label",
		"form.op.children.matrix.prototype.label",
		"form.op.children.matrix.prototype.prototype.label",
		"form.op.children.matrix.prototype.prototype.children.value.label",
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Fatalf("entry %d: want %q, got %q", i, key, got[i].Key)
		}
	}

	for _, entry := range entries {
		resolved, field, err := keys.ResolveTree(form, entry.Path)
		if err != nil {
			t.Fatalf("resolve %q: %v", entry.Path, err)
		}
		if diff := cmp.Diff(entry.Tree.Nodes(), resolved.Nodes()); diff != "" {
			t.Fatalf("tree mismatch for %q (-built +resolved):\n%s", entry.Path, diff)
		}
		if field.Name != entry.Field.Name {
			t.Fatalf("field mismatch for %q: %q vs %q", entry.Path, field.Name, entry.Field.Name)
		}
	}

	if _, _, err := keys.ResolveTree(form, "matrix[][][]"); !errors.Is(err, keys.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound past the innermost item, got %v", err)
	}
}

func TestBuilder_KeyOfEmptyTree(t *testing.T) {
	builder := keys.NewBuilder(keys.DefaultOptions())
	if got := builder.Key(tree.New(), keys.SuffixLabel); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
	if got := builder.Key(nil, keys.SuffixLabel); got != "" {
		t.Fatalf("expected empty key for nil sequence, got %q", got)
	}
}

func TestBuilder_KeyWithoutSuffix(t *testing.T) {
	builder := keys.NewBuilder(keys.DefaultOptions())
	seq := tree.New(
		&tree.Node{Name: "user", Kind: tree.NodeKindForm, HasChildren: true},
		&tree.Node{Name: "email", Kind: tree.NodeKindField},
	)
	if got := builder.Key(seq, ""); got != "form.user.children.email" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestBuilder_MultipleSuffixes(t *testing.T) {
	form := model.FormModel{
		OperationID: "signup",
		Fields: []model.Field{{
			Name:        "email",
			Label:       "Email",
			Placeholder: "you@example.com",
			UIHints:     map[string]string{"helpText": "We never share it", "placeholderKey": "common.email.placeholder"},
		}},
	}

	got, err := keys.NewBuilder(keys.DefaultOptions()).FormKeys(form, keys.SuffixPlaceholder, keys.SuffixHelp)
	if err != nil {
		t.Fatalf("form keys: %v", err)
	}

	want := []keys.KeyEntry{
		{Key: "form.signup.placeholder", Path: "", Suffix: keys.SuffixPlaceholder},
		{Key: "form.signup.help", Path: "", Suffix: keys.SuffixHelp},
		{Key: "common.email.placeholder", Path: "email", Suffix: keys.SuffixPlaceholder, Fallback: "you@example.com", Explicit: true},
		{Key: "form.signup.children.email.help", Path: "email", Suffix: keys.SuffixHelp, Fallback: "We never share it"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTrees_MatchesResolveTree(t *testing.T) {
	form := testsupport.PetForm()
	entries, err := keys.BuildTrees(form)
	if err != nil {
		t.Fatalf("build trees: %v", err)
	}

	for _, entry := range entries {
		resolved, field, err := keys.ResolveTree(form, entry.Path)
		if err != nil {
			t.Fatalf("resolve %q: %v", entry.Path, err)
		}
		if diff := cmp.Diff(entry.Tree.Nodes(), resolved.Nodes()); diff != "" {
			t.Fatalf("tree mismatch for %q (-built +resolved):\n%s", entry.Path, diff)
		}
		if diff := cmp.Diff(entry.Field, field); diff != "" {
			t.Fatalf("field mismatch for %q (-built +resolved):\n%s", entry.Path, diff)
		}
	}
}

func TestBuildTrees_OrdersRootToLeaf(t *testing.T) {
	entries, err := keys.BuildTrees(testsupport.PetForm())
	if err != nil {
		t.Fatalf("build trees: %v", err)
	}

	var date *tree.Tree
	for _, entry := range entries {
		if entry.Path == "vaccinations[].date" {
			date = entry.Tree
		}
	}
	if date == nil {
		t.Fatalf("expected an entry for vaccinations[].date")
	}

	var kinds []tree.NodeKind
	for date.Rewind(); date.Valid(); date.Next() {
		kinds = append(kinds, date.Current().Kind)
	}
	want := []tree.NodeKind{tree.NodeKindForm, tree.NodeKindCollection, tree.NodeKindPrototype, tree.NodeKindField}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kind mismatch (-want +got):\n%s", diff)
	}
	if date.String() != "createPet.vaccinations.vaccinationsItem.date" {
		t.Fatalf("unexpected path %q", date.String())
	}
}

func TestBuildTrees_Errors(t *testing.T) {
	if _, err := keys.BuildTrees(model.FormModel{}); !errors.Is(err, keys.ErrMissingOperationID) {
		t.Fatalf("expected ErrMissingOperationID, got %v", err)
	}

	form := model.FormModel{OperationID: "x", Fields: []model.Field{{Name: " "}}}
	if _, err := keys.BuildTrees(form); err == nil {
		t.Fatalf("expected error for unnamed field")
	}
}

func TestResolveTree_Errors(t *testing.T) {
	form := testsupport.PetForm()

	for _, path := range []string{"missing", "owner.phone", "owner[]", "vaccinations[].batch"} {
		if _, _, err := keys.ResolveTree(form, path); !errors.Is(err, keys.ErrFieldNotFound) {
			t.Fatalf("resolve %q: expected ErrFieldNotFound, got %v", path, err)
		}
	}
}

func TestHintFor(t *testing.T) {
	if keys.HintFor(keys.SuffixHelp) != "helpTextKey" {
		t.Fatalf("expected helpTextKey hint for help suffix")
	}
	if keys.HintFor("tooltip") != "tooltipKey" {
		t.Fatalf("expected derived hint for unknown suffix")
	}
}
