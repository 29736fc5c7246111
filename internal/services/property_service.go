package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"innkeep/internal/models/db_models"
	"innkeep/internal/models/request_models"
	"innkeep/internal/repositories"
	"innkeep/pkg/utils"
)

const houseRulesSystemPrompt = `You write house rules for short-term rental properties.
Write clear, friendly rules as a short bulleted list in the requested language.
Do not invent prices, phone numbers or addresses.`

type PropertyServiceInterface interface {
	List(ctx context.Context, accountID uuid.UUID) ([]db_models.Property, error)
	DraftHouseRules(ctx context.Context, accountID, propertyID uuid.UUID, req request_models.HouseRulesDraftRequest) (string, error)
}

type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	generator    utils.TextGenerator
	log          *zap.Logger
}

// NewPropertyService accepts a nil generator when no AI provider is configured.
func NewPropertyService(propertyRepo repositories.PropertyRepository, generator utils.TextGenerator, log *zap.Logger) PropertyServiceInterface {
	return &PropertyService{
		propertyRepo: propertyRepo,
		generator:    generator,
		log:          log,
	}
}

func (p *PropertyService) List(ctx context.Context, accountID uuid.UUID) ([]db_models.Property, error) {
	properties, err := p.propertyRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if properties == nil {
		properties = []db_models.Property{}
	}
	return properties, nil
}

func (p *PropertyService) DraftHouseRules(ctx context.Context, accountID, propertyID uuid.UUID, req request_models.HouseRulesDraftRequest) (string, error) {
	if p.generator == nil {
		return "", utils.ErrAIUnavailable
	}

	property, err := ownedProperty(ctx, p.propertyRepo, accountID, propertyID)
	if err != nil {
		return "", err
	}

	draft, err := p.generator.Generate(ctx, houseRulesSystemPrompt, BuildHouseRulesPrompt(property, req))
	if err != nil {
		p.log.Error("house rules draft failed",
			zap.String("property_id", propertyID.String()),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	return draft, nil
}

func BuildHouseRulesPrompt(property *db_models.Property, req request_models.HouseRulesDraftRequest) string {
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = "English"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Property: %s\n", property.Name)
	fmt.Fprintf(&b, "Check-in from: %s\n", property.CheckInTime)
	fmt.Fprintf(&b, "Check-out until: %s\n", property.CheckOutTime)
	fmt.Fprintf(&b, "Language: %s\n", language)
	if property.AIHouseRules != nil && *property.AIHouseRules != "" {
		fmt.Fprintf(&b, "Current rules to improve:\n%s\n", *property.AIHouseRules)
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "Host notes:\n%s\n", notes)
	}
	return b.String()
}
