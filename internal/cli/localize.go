package cli

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
)

// LocalizedForm is the JSON document printed by Localize.
type LocalizedForm struct {
	Locale     string          `json:"locale"`
	Form       model.FormModel `json:"form"`
	Translated int             `json:"translated"`
	Missing    []keys.KeyEntry `json:"missing,omitempty"`
}

// Localize prints the form model of operationID translated into the
// configured locale.
func (s *Session) Localize(ctx context.Context, operationID string) error {
	translations, err := s.Catalog()
	if err != nil {
		return err
	}
	orch, err := s.Orchestrator(translations)
	if err != nil {
		return err
	}
	req, err := s.request(operationID)
	if err != nil {
		return err
	}

	form, result, err := orch.Localize(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(s.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(LocalizedForm{
		Locale:     result.Locale,
		Form:       form,
		Translated: result.Translated,
		Missing:    result.Missing,
	})
}
