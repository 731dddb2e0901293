package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPostPatch_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		patch       PostPatch
		wantTitle   string
		wantContent string
		wantChanged bool
	}{
		{"omitted fields keep values", PostPatch{}, "T", "C", false},
		{"empty strings keep values", PostPatch{Title: strPtr(""), Content: strPtr("")}, "T", "C", false},
		{"title only", PostPatch{Title: strPtr("T2")}, "T2", "C", true},
		{"content only", PostPatch{Content: strPtr("C2")}, "T", "C2", true},
		{"both", PostPatch{Title: strPtr("T2"), Content: strPtr("C2")}, "T2", "C2", true},
		{"same values", PostPatch{Title: strPtr("T")}, "T", "C", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Post{Title: "T", Content: "C", AuthorID: "owner"}
			changed := tt.patch.Apply(p)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantContent, p.Content)
			assert.Equal(t, "owner", p.AuthorID)
		})
	}
}

func TestUser_PublicDropsPassword(t *testing.T) {
	t.Parallel()

	u := User{ID: "1", Email: "a@b.test", Password: "hash"}

	assert.Empty(t, u.Public().Password)
	assert.Equal(t, "hash", u.Password)
}
