package config

import (
	"fmt"
	"os"

	"workforce-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// leaveTypesFile is the on-disk shape of a leave-type catalog override
type leaveTypesFile struct {
	LeaveTypes []models.LeaveType `yaml:"leave_types"`
}

// LoadLeaveTypes returns the leave-type catalog. When path is empty or the
// file does not exist the built-in catalog is used.
func LoadLeaveTypes(path string) ([]models.LeaveType, error) {
	if path == "" {
		return models.DefaultLeaveTypes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultLeaveTypes, nil
		}
		return nil, fmt.Errorf("read leave types file: %w", err)
	}

	var parsed leaveTypesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse leave types file: %w", err)
	}
	if len(parsed.LeaveTypes) == 0 {
		return models.DefaultLeaveTypes, nil
	}

	for _, lt := range parsed.LeaveTypes {
		if !lt.ID.IsValid() {
			return nil, fmt.Errorf("unknown leave type id %q in %s", lt.ID, path)
		}
	}

	return parsed.LeaveTypes, nil
}
