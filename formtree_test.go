package formtree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formtree "github.com/goliatone/go-formtree"
	"github.com/goliatone/go-formtree/pkg/catalog"
	"github.com/goliatone/go-formtree/pkg/keys"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/orchestrator"
	"github.com/goliatone/go-formtree/pkg/testsupport"
)

func withPetstore() orchestrator.Option {
	return orchestrator.WithLoader(formtree.NewLoader(pkgopenapi.WithFileSystem(testsupport.PetstoreFS())))
}

func TestKeys(t *testing.T) {
	entries, err := formtree.Keys(context.Background(), testsupport.PetstoreSource(), "createPet", withPetstore())
	require.NoError(t, err)
	require.Len(t, entries, 12)
	assert.Equal(t, "form.createPet.label", entries[0].Key)
	assert.Equal(t, "form.createPet.children.vaccinations.prototype.children.vaccine.label", entries[11].Key)
}

func TestKeysFor(t *testing.T) {
	entries, err := formtree.KeysFor(context.Background(), testsupport.PetstoreSource(), "createPet",
		[]string{keys.SuffixLabel, keys.SuffixPlaceholder}, withPetstore())
	require.NoError(t, err)
	require.Len(t, entries, 24)
	assert.Equal(t, "form.createPet.placeholder", entries[1].Key)
}

func TestKeysFromDocument(t *testing.T) {
	entries, err := formtree.KeysFromDocument(context.Background(), testsupport.PetstoreDoc(), "createPet",
		orchestrator.WithParser(formtree.NewParser(pkgopenapi.WithValidation(false))))
	require.NoError(t, err)
	assert.Equal(t, "form.createPet.children.name.label", entries[1].Key)
}

func TestLocalize(t *testing.T) {
	translations := catalog.New()
	translations.Add("fr", "form.createPet.label", "Créer un animal")

	form, result, err := formtree.Localize(context.Background(), testsupport.PetstoreSource(), "createPet", "fr",
		withPetstore(), orchestrator.WithTranslator(translations))
	require.NoError(t, err)
	assert.Equal(t, "Créer un animal", form.Summary)
	assert.Equal(t, 1, result.Translated)
	assert.Equal(t, "fr", result.Locale)
}
