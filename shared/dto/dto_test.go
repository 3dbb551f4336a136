package dto_test

import (
	"testing"
	"time"

	"kwagala/shared/constant"
	"kwagala/shared/dto"
	"kwagala/shared/model"
	"kwagala/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 11, 5, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(updatedAt, constant.DateFormat), metadata.UpdatedAt)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group matches everything",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "single filter with table",
			group:     dto.FilterGroup{Filters: []dto.Filter{{Field: "id", Value: "abc", Table: "bookings"}}},
			wantWhere: "(bookings.id = :id)",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name: "filters are joined with AND",
			group: dto.FilterGroup{Filters: []dto.Filter{
				{Field: "location", Value: "CBD"},
				{Field: "status", Value: "pending"},
			}},
			wantWhere: "(location = :location AND status = :status)",
			wantArgs:  map[string]any{"location": "CBD", "status": "pending"},
		},
		{
			name: "repeated field gets a numbered argument",
			group: dto.FilterGroup{Filters: []dto.Filter{
				{Field: "room", Value: "Studio"},
				{Field: "room", Value: "One bedroom"},
			}},
			wantWhere: "(room = :room AND room = :room_1)",
			wantArgs:  map[string]any{"room": "Studio", "room_1": "One bedroom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNewest(t *testing.T) {
	params := dto.Newest()

	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "DESC", params.SortDir)
}
