// internals/features/diary/dto/diary_dto.go
package dto

type CreateDiaryEntryRequest struct {
	CourseCode       string   `json:"course_code" validate:"required"`
	Date             string   `json:"date" validate:"required"`
	Activities       string   `json:"activities" validate:"required"`
	Homework         string   `json:"homework"`
	AdditionalNotes  string   `json:"additional_notes"`
	Status           string   `json:"status" validate:"required"`
	LearningOutcomes []string `json:"learning_outcomes" validate:"required,min=1"`
	Period           string   `json:"period" validate:"required"`
}
