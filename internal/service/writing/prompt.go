package writing

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// promptService implements the PromptService interface
type promptService struct {
	promptRepo writingRepo.PromptRepository
	logger     *slog.Logger
}

// NewPromptService creates a new prompt template service
func NewPromptService(promptRepo writingRepo.PromptRepository, logger *slog.Logger) writingSvc.PromptService {
	return &promptService{
		promptRepo: promptRepo,
		logger:     logger,
	}
}

func validatePromptRequest(req *writingSvc.PromptRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxPromptNameLength)),
		validation.Field(&req.Content, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// CreatePrompt creates a new named template
func (s *promptService) CreatePrompt(ctx context.Context, req *writingSvc.PromptRequest) (*models.PromptTemplate, error) {
	if err := validatePromptRequest(req); err != nil {
		return nil, err
	}

	prompt := &models.PromptTemplate{
		Name:    req.Name,
		Content: req.Content,
	}
	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt template created", "prompt_id", prompt.ID, "name", prompt.Name)
	return prompt, nil
}

// GetPrompt retrieves a template by ID
func (s *promptService) GetPrompt(ctx context.Context, id string) (*models.PromptTemplate, error) {
	return s.promptRepo.GetByID(ctx, id)
}

// ListPrompts retrieves all templates, newest first
func (s *promptService) ListPrompts(ctx context.Context) ([]models.PromptTemplate, error) {
	return s.promptRepo.List(ctx)
}

// UpdatePrompt updates a template
func (s *promptService) UpdatePrompt(ctx context.Context, id string, req *writingSvc.PromptRequest) (bool, error) {
	if err := validatePromptRequest(req); err != nil {
		return false, err
	}

	prompt := &models.PromptTemplate{
		ID:      id,
		Name:    req.Name,
		Content: req.Content,
	}
	return s.promptRepo.Update(ctx, prompt)
}

// DeletePrompt deletes a template
func (s *promptService) DeletePrompt(ctx context.Context, id string) (bool, error) {
	return s.promptRepo.Delete(ctx, id)
}
