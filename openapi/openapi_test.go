package openapi

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const document = `
openapi: 3.0.3
info:
  title: test
  version: "1"
paths: {}
components:
  schemas:
    user-profile:
      type: object
      required: [id, name, owner]
      properties:
        id: {type: integer}
        name: {type: string}
        tags:
          type: array
          items: {type: string}
          default: []
        active: {type: boolean, default: true}
        owner: {$ref: '#/components/schemas/Owner'}
        score: {type: number, nullable: true}
    Owner:
      type: object
      required: [email]
      properties:
        email: {type: string, format: email}
        created-at: {type: string, nullable: true}
`

func TestClasses(t *testing.T) {
	classes, err := Classes(context.Background(), []byte(document))
	if err != nil {
		t.Fatalf("classes: %v", err)
	}

	if len(classes) != 2 {
		t.Fatalf("want 2 classes, got %d", len(classes))
	}

	want := []string{
		"class Owner{" +
			"public $created_at;" +
			"public $email;" +
			"public function __construct(string $email) {$this->email = $email;}" +
			"}",
		"class UserProfile{" +
			"public $active = true;" +
			"public $id;" +
			"public $name;" +
			"public $owner;" +
			"public $score;" +
			"public $tags = [];" +
			"public function __construct(int $id,string $name,Owner $owner) {" +
			"$this->id = $id;$this->name = $name;$this->owner = $owner;" +
			"}" +
			"}",
	}

	for i, c := range classes {
		if diff := cmp.Diff(want[i], c.Render(false, 0)); diff != "" {
			t.Errorf("class %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestFile(t *testing.T) {
	b, err := File(context.Background(), []byte(document),
		WithNamespace(`App\Dto`),
		WithParent("Base"),
		WithInterfaces("JsonSerializable"),
	)
	if err != nil {
		t.Fatalf("file: %v", err)
	}

	got := b.Render(true, 0)

	want := `<?php
namespace App\Dto;

class Owner extends Base implements
    JsonSerializable
{
    public $created_at;
    public $email;

    public function __construct(
        string $email
    )
    {
        $this->email = $email;
    }
}

class UserProfile extends Base implements
    JsonSerializable
{
    public $active = true;
    public $id;
    public $name;
    public $owner;
    public $score;
    public $tags = [];

    public function __construct(
        int $id,
        string $name,
        Owner $owner
    )
    {
        $this->id = $id;
        $this->name = $name;
        $this->owner = $owner;
    }
}`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPHPType(t *testing.T) {
	const doc = `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    T:
      type: object
      required: [a, b, c, d, e]
      properties:
        a: {type: number, nullable: true}
        b: {type: object}
        c: {type: array, items: {type: integer}}
        d: {}
        e: {type: boolean}
`

	classes, err := Classes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("classes: %v", err)
	}

	m, err := classes[0].GetMethod("__construct")
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, p := range m.Function().Params() {
		got = append(got, p.TypeHint())
	}

	want := []string{"?float", "array", "array", "", "bool"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClasses_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "malformed",
			doc:  "openapi: [",
			want: ErrDocument,
		},
		{
			name: "no schemas",
			doc:  "openapi: 3.0.3\ninfo: {title: t, version: '1'}\npaths: {}\n",
			want: ErrNoSchemas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classes(context.Background(), []byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClasses_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Classes(ctx, []byte(document)); !errors.Is(err, context.Canceled) {
		t.Errorf("want %v, got %v", context.Canceled, err)
	}
}

func TestNames(t *testing.T) {
	classes := map[string]string{
		"user-profile": "UserProfile",
		"Owner":        "Owner",
		"v2_item list": "V2ItemList",
		"2fa":          "Schema2fa",
		"---":          "Schema",
	}

	for in, want := range classes {
		if got := className(in); got != want {
			t.Errorf("className(%q)\nwant: %q\ngot:  %q", in, want, got)
		}
	}

	vars := map[string]string{
		"created-at": "created_at",
		"name":       "name",
		"1st":        "_1st",
	}

	for in, want := range vars {
		if got := varName(in); got != want {
			t.Errorf("varName(%q)\nwant: %q\ngot:  %q", in, want, got)
		}
	}
}

func TestVarNames_Distinct(t *testing.T) {
	got := varNames([]string{"first-name", "first_name", "first_name_2", "last"})

	want := map[string]string{
		"first-name":   "first_name",
		"first_name":   "first_name_2",
		"first_name_2": "first_name_2_2",
		"last":         "last",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("varNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestClasses_CollidingProperties(t *testing.T) {
	const doc = `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    Person:
      type: object
      required: [first-name, first_name]
      properties:
        first-name: {type: string}
        first_name: {type: string}
`

	classes, err := Classes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("classes: %v", err)
	}

	want := "class Person{" +
		"public $first_name;" +
		"public $first_name_2;" +
		"public function __construct(string $first_name,string $first_name_2) {" +
		"$this->first_name = $first_name;$this->first_name_2 = $first_name_2;" +
		"}" +
		"}"

	if diff := cmp.Diff(want, classes[0].Render(false, 0)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
