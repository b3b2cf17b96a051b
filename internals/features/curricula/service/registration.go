// internals/features/curricula/service/registration.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"currimon_backend/internals/features/curricula/dto"
	"currimon_backend/internals/features/curricula/model"
	taxonomyService "currimon_backend/internals/features/taxonomy/service"
	"currimon_backend/internals/helpers/extractor"
	"currimon_backend/internals/helpers/storage"
)

/* =======================================================================
   Curriculum registration

   A submission moves through Received → Validated → (Manual | Auto) →
   Stored, or exits early as Rejected (caller error, nothing persisted) or
   Failed (downstream error). The staged document is removed on every exit
   that is not Stored.
======================================================================= */

type State string

const (
	StateStored   State = "Stored"
	StateRejected State = "Rejected"
	StateFailed   State = "Failed"
)

// RejectionError is a caller-correctable validation failure; Field names the
// offending input.
type RejectionError struct {
	Field   string
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

// Outcome reports where the state machine ended up. Curriculum is set only
// for Manual registrations that reached Stored; Message carries the relayed
// extractor body for Auto ones.
type Outcome struct {
	State      State
	Message    string
	Curriculum *model.CurriculumModel
}

type Input struct {
	Req    dto.CreateCurriculumRequest
	Staged *storage.StagedDocument
}

type RegistrationService struct {
	DB        *gorm.DB
	Store     storage.DocumentStore
	Extractor extractor.Client

	// overridable so the state machine can be driven without a database
	validateChain func(ctx context.Context, educationType, levelType, sectionType, classLabel string) error
}

func NewRegistrationService(db *gorm.DB, store storage.DocumentStore, ex extractor.Client) *RegistrationService {
	s := &RegistrationService{DB: db, Store: store, Extractor: ex}
	s.validateChain = func(ctx context.Context, educationType, levelType, sectionType, classLabel string) error {
		return taxonomyService.ValidateCurriculumChain(ctx, s.DB, educationType, levelType, sectionType, classLabel)
	}
	return s
}

// Register runs one submission through the state machine. The request DTO is
// assumed syntactically valid; everything semantic (ancestor chain, issue
// date, structure tree) is checked here.
func (s *RegistrationService) Register(ctx context.Context, in Input) (*Outcome, error) {
	outcome, err := s.register(ctx, in)
	if err != nil || outcome.State != StateStored {
		if derr := s.Store.Discard(in.Staged); derr != nil {
			log.Println("[WARN] discard staged curriculum document:", derr)
		}
	}
	return outcome, err
}

func (s *RegistrationService) register(ctx context.Context, in Input) (*Outcome, error) {
	req := in.Req

	issuedOn, err := parseIssuedOn(req.IssuedOn)
	if err != nil {
		return rejected("issued_on", "issued_on must be a valid date.")
	}

	if err := s.validateChain(ctx, req.EducationType, req.LevelType, req.SectionType, req.ClassType); err != nil {
		var ce *taxonomyService.ChainError
		if errors.As(err, &ce) {
			return rejected(ce.Field, ce.Message)
		}
		return &Outcome{State: StateFailed, Message: "Curriculum processing failed"}, err
	}

	code := GenerateCurriculumCode(req.Code)

	if req.InputMethod == "Manual" {
		return s.registerManual(ctx, req, in.Staged, code, issuedOn)
	}
	return s.registerAuto(ctx, req, in.Staged, code, issuedOn)
}

func (s *RegistrationService) registerManual(ctx context.Context, req dto.CreateCurriculumRequest, staged *storage.StagedDocument, code string, issuedOn time.Time) (*Outcome, error) {
	if strings.TrimSpace(req.Structure) == "" {
		return rejected("structure", "structure is required for Manual input.")
	}
	chapters, err := ParseStructure(req.Structure)
	if err != nil {
		return rejected("structure", err.Error())
	}
	details, err := json.Marshal(chapters)
	if err != nil {
		return &Outcome{State: StateFailed, Message: "Curriculum processing failed"}, err
	}

	docRef, err := s.Store.Promote(staged, code)
	if err != nil {
		return &Outcome{State: StateFailed, Message: "Curriculum processing failed"}, err
	}

	cur := model.CurriculumModel{
		Code:              code,
		Name:              req.Name,
		Duration:          req.Duration,
		EducationTypeCode: req.EducationType,
		LevelTypeCode:     req.LevelType,
		SectionTypeCode:   req.SectionType,
		ClassTypeCode:     req.ClassType,
		Details:           datatypes.JSON(details),
		Description:       req.Description,
		DocumentPath:      docRef,
		IssuedOn:          issuedOn,
	}
	if err := s.DB.WithContext(ctx).Create(&cur).Error; err != nil {
		return &Outcome{State: StateFailed, Message: "Something went wrong, curriculum not recorded."}, err
	}
	return &Outcome{State: StateStored, Message: "Curriculum added successfully", Curriculum: &cur}, nil
}

func (s *RegistrationService) registerAuto(ctx context.Context, req dto.CreateCurriculumRequest, staged *storage.StagedDocument, code string, issuedOn time.Time) (*Outcome, error) {
	finalRef := s.Store.FinalRef(staged, code)

	res, err := s.Extractor.AddCurriculum(ctx, extractor.Request{
		Code:          code,
		Name:          req.Name,
		EducationType: req.EducationType,
		LevelType:     req.LevelType,
		SectionType:   req.SectionType,
		ClassType:     req.ClassType,
		Description:   req.Description,
		Duration:      req.Duration,
		IssuedOn:      issuedOn.Format(time.RFC3339),
		Document:      staged.Path,
		DocumentPath:  finalRef,
	})
	if err != nil {
		return &Outcome{State: StateFailed, Message: "Curriculum processing failed"}, err
	}
	if res.Type != "success" {
		// downstream rejected or errored; relay its message verbatim
		return &Outcome{State: StateFailed, Message: res.Message}, nil
	}

	// the extractor persisted the row; commit the document it references
	if _, err := s.Store.Promote(staged, code); err != nil {
		return &Outcome{State: StateFailed, Message: "Curriculum processing failed"}, err
	}
	return &Outcome{State: StateStored, Message: res.Message}, nil
}

func rejected(field, msg string) (*Outcome, error) {
	return &Outcome{State: StateRejected, Message: msg}, &RejectionError{Field: field, Message: msg}
}

/* ===== Pure helpers ===== */

// GenerateCurriculumCode suffixes the supplied base code with the submission
// timestamp in milliseconds, which keeps codes unique per base.
func GenerateCurriculumCode(base string) string {
	return fmt.Sprintf("%s_%d", strings.TrimSpace(base), time.Now().UnixMilli())
}

// ParseStructure decodes the Manual chapter tree and checks every node has a
// title. Array order is preserved as submitted.
func ParseStructure(raw string) ([]dto.Chapter, error) {
	var chapters []dto.Chapter
	if err := json.Unmarshal([]byte(raw), &chapters); err != nil {
		return nil, errors.New("structure must be a JSON array of chapters")
	}
	if len(chapters) == 0 {
		return nil, errors.New("structure must contain at least one chapter")
	}
	for _, ch := range chapters {
		if strings.TrimSpace(ch.Title) == "" {
			return nil, errors.New("every chapter needs a title")
		}
		for _, sub := range ch.SubChapters {
			if strings.TrimSpace(sub.Title) == "" {
				return nil, errors.New("every sub-chapter needs a title")
			}
			for _, u := range sub.Units {
				if strings.TrimSpace(u.Title) == "" {
					return nil, errors.New("every unit needs a title")
				}
			}
		}
	}
	return chapters, nil
}

func parseIssuedOn(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date")
}
