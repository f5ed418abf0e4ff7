package docx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "DocumentError",
			err:     &DocumentError{Operation: "build", Path: "word/styles.xml", Cause: errors.New("empty style id")},
			wantMsg: "document error during build of 'word/styles.xml': empty style id",
		},
		{
			name:    "DocumentError without path",
			err:     &DocumentError{Operation: "pack", Cause: errors.New("disk full")},
			wantMsg: "document error during pack: disk full",
		},
		{
			name:    "MalformedInputError",
			err:     &MalformedInputError{Field: "dcterms:created", Value: "yesterday"},
			wantMsg: `malformed dcterms:created "yesterday"`,
		},
		{
			name: "IntegrityError single issue",
			err: &IntegrityError{Issues: []Issue{
				{Kind: IssueNumbering, Ref: "3", Location: "body[0]", Message: "numbering is not defined"},
			}},
			wantMsg: `integrity error: numbering "3" at body[0]: numbering is not defined`,
		},
		{
			name: "ValidationError single issue",
			err: &ValidationError{Issues: []ValidationIssue{
				{Field: "Compression", Message: "unsupported"},
			}},
			wantMsg: "validation error: Compression - unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestIntegrityErrorListsEveryIssue(t *testing.T) {
	err := &IntegrityError{Issues: []Issue{
		{Kind: IssueStyle, Ref: "Heading9", Location: "body[1]", Message: "style is not defined"},
		{Kind: IssueRelationship, Ref: "rId42", Location: "body[2]/0", Message: "hyperlink relationship is not defined"},
	}}

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "2 unresolved references:"))
	assert.Contains(t, msg, `style "Heading9"`)
	assert.Contains(t, msg, `relationship "rId42"`)
}

func TestErrorHelpers(t *testing.T) {
	integrity := &IntegrityError{Issues: []Issue{{Kind: IssueComment, Ref: "1"}}}
	malformed := &MalformedInputError{Field: "dcterms:modified", Value: "x"}
	document := NewDocumentError("build", "word/numbering.xml", errors.New("bad level"))
	validation := &ValidationError{}

	assert.True(t, IsIntegrityError(fmt.Errorf("wrapped: %w", integrity)))
	assert.True(t, IsMalformedInputError(WithContext(malformed, "build", nil)))
	assert.True(t, IsDocumentError(multierr.Append(errors.New("other"), document)))
	assert.True(t, IsValidationError(validation))

	assert.False(t, IsIntegrityError(document))
	assert.False(t, IsDocumentError(nil))
}

func TestWithContext(t *testing.T) {
	assert.Nil(t, WithContext(nil, "build", nil))

	cause := errors.New("boom")
	err := WithContext(cause, "pack", map[string]interface{}{"path": "out.docx"})
	assert.Equal(t, "pack [path=out.docx]: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
