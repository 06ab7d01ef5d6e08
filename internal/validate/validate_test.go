package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "six digits lowercase", input: "#aabbcc"},
		{name: "six digits mixed case", input: "#A1b2C3"},
		{name: "three digits", input: "#FFF"},
		{name: "missing hash", input: "aabbcc", wantErr: true},
		{name: "non hex digit", input: "#GGG", wantErr: true},
		{name: "four digits", input: "#abcd", wantErr: true},
		{name: "seven digits", input: "#abcdef0", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing space", input: "#fff ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorHex(tt.input)
			if tt.wantErr {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, tt.input, formatErr.Value)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical lowercase", input: "123e4567-e89b-12d3-a456-426614174000"},
		{name: "canonical uppercase", input: "123E4567-E89B-12D3-A456-426614174000"},
		{name: "empty", input: "", wantErr: true},
		{name: "not a uuid", input: "not-a-uuid", wantErr: true},
		{name: "no hyphens", input: "123e4567e89b12d3a456426614174000", wantErr: true},
		{name: "braced", input: "{123e4567-e89b-12d3-a456-426614174000}", wantErr: true},
		{name: "urn", input: "urn:uuid:123e4567-e89b-12d3-a456-426614174000", wantErr: true},
		{name: "bad digit", input: "123e4567-e89b-12d3-a456-42661417400z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UUID(tt.input)
			if tt.wantErr {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, tt.input, formatErr.Value)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUUIDCollection(t *testing.T) {
	first := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	second := uuid.MustParse("9b2f7c2e-3c4d-4a5b-8c6d-7e8f9a0b1c2d")

	tests := []struct {
		name       string
		input      string
		want       []uuid.UUID
		wantErr    bool
		wantReason string
	}{
		{name: "empty array", input: "[]", want: []uuid.UUID{}},
		{name: "single element", input: `["123e4567-e89b-12d3-a456-426614174000"]`, want: []uuid.UUID{first}},
		{
			name:  "order preserved",
			input: `[ "9b2f7c2e-3c4d-4a5b-8c6d-7e8f9a0b1c2d", "123e4567-e89b-12d3-a456-426614174000" ]`,
			want:  []uuid.UUID{second, first},
		},
		{name: "not json", input: "nope", wantErr: true},
		{name: "object", input: `{"a":1}`, wantErr: true},
		{name: "null", input: "null", wantErr: true},
		{name: "unterminated", input: `["123e4567-e89b-12d3-a456-426614174000"`, wantErr: true},
		{name: "number element", input: "[1]", wantErr: true, wantReason: "element 0 is not a string"},
		{name: "surrounding whitespace", input: " [\"123e4567-e89b-12d3-a456-426614174000\"]\n", want: []uuid.UUID{first}},
		{
			name:       "trailing garbage",
			input:      `["123e4567-e89b-12d3-a456-426614174000"]garbage`,
			wantErr:    true,
			wantReason: "malformed JSON: unexpected data after the array",
		},
		{name: "second array", input: `[][]`, wantErr: true},
		{
			name:       "second element invalid",
			input:      `["123e4567-e89b-12d3-a456-426614174000","nope"]`,
			wantErr:    true,
			wantReason: "invalid UUID at element 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UUIDCollection(tt.input)
			if tt.wantErr {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, formatErr.Reason)
				}
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithField(t *testing.T) {
	_, err := ColorHex("red")
	annotated := WithField(err, "colorHex")

	var formatErr *FormatError
	require.ErrorAs(t, annotated, &formatErr)
	assert.Equal(t, "colorHex", formatErr.Field)
	assert.Equal(t, "invalid colorHex 'red': invalid color hex", annotated.Error())

	var original *FormatError
	require.ErrorAs(t, err, &original)
	assert.Empty(t, original.Field)

	assert.Nil(t, WithField(nil, "x"))
}

type structInput struct {
	Owner    string  `json:"owner" validate:"uuidtext"`
	Color    *string `json:"colorHex" validate:"omitnil,colorhex"`
	Members  *string `json:"members" validate:"omitnil,uuidjson"`
	Nickname string  `json:"nickname" validate:"required"`
}

func TestStruct(t *testing.T) {
	validOwner := "123e4567-e89b-12d3-a456-426614174000"
	color := "#abc"
	badColor := "#abcd"
	members := `["123e4567-e89b-12d3-a456-426614174000"]`
	badMembers := `["x"]`
	trailingMembers := members + ` junk`
	empty := ""

	tests := []struct {
		name      string
		input     structInput
		wantField string
		wantValue string
	}{
		{
			name:  "all valid",
			input: structInput{Owner: validOwner, Color: &color, Members: &members, Nickname: "al"},
		},
		{
			name:  "optional fields absent",
			input: structInput{Owner: validOwner, Nickname: "al"},
		},
		{
			name:      "bad owner",
			input:     structInput{Owner: "nope", Nickname: "al"},
			wantField: "owner",
			wantValue: "nope",
		},
		{
			name:      "bad color",
			input:     structInput{Owner: validOwner, Color: &badColor, Nickname: "al"},
			wantField: "colorHex",
			wantValue: "#abcd",
		},
		{
			name:      "present but empty color",
			input:     structInput{Owner: validOwner, Color: &empty, Nickname: "al"},
			wantField: "colorHex",
			wantValue: "",
		},
		{
			name:      "bad member element",
			input:     structInput{Owner: validOwner, Members: &badMembers, Nickname: "al"},
			wantField: "members",
			wantValue: "x",
		},
		{
			name:      "member list with trailing data",
			input:     structInput{Owner: validOwner, Members: &trailingMembers, Nickname: "al"},
			wantField: "members",
			wantValue: trailingMembers,
		},
		{
			name:      "missing required",
			input:     structInput{Owner: validOwner},
			wantField: "nickname",
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantField, formatErr.Field)
			assert.Equal(t, tt.wantValue, formatErr.Value)
		})
	}
}
