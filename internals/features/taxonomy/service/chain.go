// internals/features/taxonomy/service/chain.go
package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"currimon_backend/internals/features/taxonomy/model"
)

// ChainError reports which link of a supplied taxonomy ancestor chain does not
// hold. Field names the offending request field so controllers can surface it
// as a validation detail.
type ChainError struct {
	Field   string
	Message string
}

func (e *ChainError) Error() string { return e.Message }

func invalidParent(field, format string, args ...interface{}) *ChainError {
	return &ChainError{Field: field, Message: fmt.Sprintf(format, args...)}
}

/* ===== Active lookups ===== */

func ActiveEducationType(ctx context.Context, db *gorm.DB, code string) (*model.EducationTypeModel, error) {
	var et model.EducationTypeModel
	err := db.WithContext(ctx).
		Where("code = ? AND active = TRUE", code).
		First(&et).Error
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func ActiveLevelType(ctx context.Context, db *gorm.DB, code string) (*model.LevelTypeModel, error) {
	var lt model.LevelTypeModel
	err := db.WithContext(ctx).
		Where("code = ? AND active = TRUE", code).
		First(&lt).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func ActiveSectionType(ctx context.Context, db *gorm.DB, code string) (*model.SectionTypeModel, error) {
	var st model.SectionTypeModel
	err := db.WithContext(ctx).
		Where("code = ? AND active = TRUE", code).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

/* ===== Chain validation ===== */

// ValidateLevelParent checks that the named education type exists and is
// active. Used before inserting a level type.
func ValidateLevelParent(ctx context.Context, db *gorm.DB, educationType string) error {
	if _, err := ActiveEducationType(ctx, db, educationType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidParent("education_type", "Education type %q does not exist or is inactive.", educationType)
		}
		return err
	}
	return nil
}

// ValidateSectionParent checks the whole supplied chain for a section insert:
// the level must exist, be active, and belong to the named education type.
func ValidateSectionParent(ctx context.Context, db *gorm.DB, educationType, levelType string) error {
	if err := ValidateLevelParent(ctx, db, educationType); err != nil {
		return err
	}
	lt, err := ActiveLevelType(ctx, db, levelType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidParent("level_type", "Level type %q does not exist or is inactive.", levelType)
		}
		return err
	}
	if lt.LevelTypeEducationTypeCode != educationType {
		return invalidParent("level_type", "Level type %q does not belong to education type %q.", levelType, educationType)
	}
	return nil
}

// ValidateCurriculumChain re-validates every ancestor a curriculum names:
// education type → level type → section type must each exist, be active, and
// reference the link above, and the class label must be one the section
// actually offers. Client-supplied chains are never trusted as-is.
func ValidateCurriculumChain(ctx context.Context, db *gorm.DB, educationType, levelType, sectionType, classLabel string) error {
	if err := ValidateSectionParent(ctx, db, educationType, levelType); err != nil {
		return err
	}
	st, err := ActiveSectionType(ctx, db, sectionType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidParent("section_type", "Section type %q does not exist or is inactive.", sectionType)
		}
		return err
	}
	if st.SectionTypeLevelTypeCode != levelType {
		return invalidParent("section_type", "Section type %q does not belong to level type %q.", sectionType, levelType)
	}
	if classLabel != "" && !ContainsClassLabel(st.SectionTypeClasses, classLabel) {
		return invalidParent("class_type", "Class %q is not offered by section type %q.", classLabel, sectionType)
	}
	return nil
}
