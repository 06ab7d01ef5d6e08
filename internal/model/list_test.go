package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

func strPtr(s string) *string { return &s }

func TestList_Row(t *testing.T) {
	listID := uuid.MustParse("11111111-1111-4111-8111-111111111111")
	infoID := uuid.MustParse("22222222-2222-4222-8222-222222222222")
	taskID := uuid.MustParse("33333333-3333-4333-8333-333333333333")
	parentID := uuid.MustParse("44444444-4444-4444-8444-444444444444")

	tests := []struct {
		name string
		list List
		want ListRow
	}{
		{
			name: "nil collections become NULL",
			list: List{UUID: listID, Title: "Groceries", CreationInformationUUID: infoID},
			want: ListRow{
				UUID:                    listID.String(),
				Title:                   "Groceries",
				CreationInformationUUID: infoID.String(),
			},
		},
		{
			name: "empty collection stays an empty array",
			list: List{UUID: listID, Title: "Groceries", TaskUUIDs: []uuid.UUID{}, CreationInformationUUID: infoID},
			want: ListRow{
				UUID:                    listID.String(),
				Title:                   "Groceries",
				TaskUUIDs:               strPtr("[]"),
				CreationInformationUUID: infoID.String(),
			},
		},
		{
			name: "all fields",
			list: List{
				UUID:                    listID,
				Title:                   "Groceries",
				Description:             strPtr("weekly"),
				ColorHex:                strPtr("#abc"),
				TaskUUIDs:               []uuid.UUID{taskID},
				ParentListUUID:          &parentID,
				SubListUUIDs:            []uuid.UUID{parentID, taskID},
				SharedWithUserUUIDs:     []uuid.UUID{infoID},
				CreationInformationUUID: infoID,
			},
			want: ListRow{
				UUID:                    listID.String(),
				Title:                   "Groceries",
				Description:             strPtr("weekly"),
				ColorHex:                strPtr("#abc"),
				TaskUUIDs:               strPtr(`["` + taskID.String() + `"]`),
				ParentListUUID:          strPtr(parentID.String()),
				SubListUUIDs:            strPtr(`["` + parentID.String() + `","` + taskID.String() + `"]`),
				SharedWithUserUUIDs:     strPtr(`["` + infoID.String() + `"]`),
				CreationInformationUUID: infoID.String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := tt.list.Row()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, row); diff != "" {
				t.Errorf("Row() mismatch (-want +got):\n%s", diff)
			}

			decoded, err := ListFromRow(row)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.list, decoded); diff != "" {
				t.Errorf("ListFromRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListFromRow_Invalid(t *testing.T) {
	valid := ListRow{
		UUID:                    "11111111-1111-4111-8111-111111111111",
		Title:                   "Groceries",
		CreationInformationUUID: "22222222-2222-4222-8222-222222222222",
	}

	tests := []struct {
		name      string
		mutate    func(*ListRow)
		wantField string
	}{
		{name: "bad uuid", mutate: func(r *ListRow) { r.UUID = "x" }, wantField: "uuid"},
		{name: "bad creation information", mutate: func(r *ListRow) { r.CreationInformationUUID = "x" }, wantField: "creationInformationUuid"},
		{name: "bad parent", mutate: func(r *ListRow) { r.ParentListUUID = strPtr("x") }, wantField: "parentListUuid"},
		{name: "corrupt task uuids", mutate: func(r *ListRow) { r.TaskUUIDs = strPtr("[") }, wantField: "taskUuids"},
		{name: "corrupt sub lists", mutate: func(r *ListRow) { r.SubListUUIDs = strPtr(`["x"]`) }, wantField: "subListUuids"},
		{name: "corrupt shared users", mutate: func(r *ListRow) { r.SharedWithUserUUIDs = strPtr("{}") }, wantField: "sharedWithUserUuids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)

			_, err := ListFromRow(row)
			var formatErr *validate.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantField, formatErr.Field)
		})
	}
}

func TestEncodeDecodeUUIDs(t *testing.T) {
	encoded, err := EncodeUUIDs(nil)
	require.NoError(t, err)
	assert.Nil(t, encoded)

	decoded, err := DecodeUUIDs(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	encoded, err = EncodeUUIDs(ids)
	require.NoError(t, err)
	require.NotNil(t, encoded)

	decoded, err = DecodeUUIDs(encoded)
	require.NoError(t, err)
	assert.Equal(t, ids, decoded)
}
