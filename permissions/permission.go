package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission marks one route pattern. Admin endpoints need the admin pass when
// enforcement is switched on.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Admin  bool   `json:"admin"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// IsAdmin reports whether the route pattern path with method is admin only.
func (r *PermissionData) IsAdmin(path, method string) bool {
	if r == nil {
		return false
	}

	return r.FindPermissions(path, method).Admin
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

func Parse(raw []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}
