package testsupport

import (
	"context"
	"testing/fstest"

	pkgmodel "github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

// PetstoreName is the fs path PetstoreFS serves PetstoreDocument under.
const PetstoreName = "petstore.yaml"

// PetstoreDocument is a small OpenAPI document exercising nested objects,
// collections of primitives, collections of objects and explicit key hints.
const PetstoreDocument = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      summary: List pets
      responses:
        "200":
          description: ok
    post:
      operationId: createPet
      summary: Create a pet
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: created
components:
  schemas:
    Pet:
      type: object
      required:
        - name
      properties:
        name:
          type: string
          description: Pet name
        tag:
          type: string
          x-formtree:
            labelKey: pets.tag.custom
        owner:
          type: object
          properties:
            email:
              type: string
              format: email
            fullName:
              type: string
        photoUrls:
          type: array
          items:
            type: string
            format: uri
        vaccinations:
          type: array
          items:
            type: object
            properties:
              date:
                type: string
                format: date
              vaccine:
                type: string
`

// PetstoreFS serves PetstoreDocument at PetstoreName.
func PetstoreFS() fstest.MapFS {
	return fstest.MapFS{
		PetstoreName: &fstest.MapFile{Data: []byte(PetstoreDocument)},
	}
}

// PetstoreSource addresses PetstoreDocument inside PetstoreFS.
func PetstoreSource() pkgopenapi.Source {
	return pkgopenapi.SourceFromFS(PetstoreName)
}

// PetstoreDoc wraps PetstoreDocument in a Document.
func PetstoreDoc() pkgopenapi.Document {
	return pkgopenapi.MustNewDocument(PetstoreSource(), []byte(PetstoreDocument))
}

// PetForm returns the form model the builder produces for createPet. Fields
// are sorted by name at every level.
func PetForm() pkgmodel.FormModel {
	return pkgmodel.FormModel{
		OperationID: "createPet",
		Endpoint:    "/pets",
		Method:      "POST",
		Summary:     "Create a pet",
		Fields: []pkgmodel.Field{
			{Name: "name", Type: pkgmodel.FieldTypeString, Required: true, Label: "Name", Description: "Pet name"},
			{
				Name:  "owner",
				Type:  pkgmodel.FieldTypeObject,
				Label: "Owner",
				Nested: []pkgmodel.Field{
					{Name: "email", Type: pkgmodel.FieldTypeString, Format: "email", Label: "Email"},
					{Name: "fullName", Type: pkgmodel.FieldTypeString, Label: "Full Name"},
				},
			},
			{
				Name:  "photoUrls",
				Type:  pkgmodel.FieldTypeArray,
				Label: "Photo Urls",
				Items: &pkgmodel.Field{Name: "photoUrlsItem", Type: pkgmodel.FieldTypeString, Format: "uri", Label: "Photo Urls Item"},
			},
			{
				Name:    "tag",
				Type:    pkgmodel.FieldTypeString,
				Label:   "Tag",
				UIHints: map[string]string{"labelKey": "pets.tag.custom"},
			},
			{
				Name:  "vaccinations",
				Type:  pkgmodel.FieldTypeArray,
				Label: "Vaccinations",
				Items: &pkgmodel.Field{
					Name:  "vaccinationsItem",
					Type:  pkgmodel.FieldTypeObject,
					Label: "Vaccinations Item",
					Nested: []pkgmodel.Field{
						{Name: "date", Type: pkgmodel.FieldTypeString, Format: "date", Label: "Date"},
						{Name: "vaccine", Type: pkgmodel.FieldTypeString, Label: "Vaccine"},
					},
				},
			},
		},
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
