package tree

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/internal/utils/mailing"
	"Wanderpass-Backend/pkg/token"
	"Wanderpass-Backend/pkg/user"
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type (
	TreeService interface {
		PlantTrees(ctx context.Context, req domain.PlantTreesRequest, userID string) (*domain.PlantTreesResponse, error)
		GetUserTrees(ctx context.Context, userID string, limit, offset int) (*domain.GetTreesResponse, error)
	}

	treeService struct {
		treeRepository  TreeRepository
		tokenRepository token.TokenRepository
		userRepository  user.UserRepository
	}
)

func NewTreeService(treeRepository TreeRepository, tokenRepository token.TokenRepository, userRepository user.UserRepository) TreeService {
	return &treeService{
		treeRepository:  treeRepository,
		tokenRepository: tokenRepository,
		userRepository:  userRepository,
	}
}

func (s *treeService) PlantTrees(ctx context.Context, req domain.PlantTreesRequest, userID string) (*domain.PlantTreesResponse, error) {
	treeCount := req.TreeCount
	if treeCount == 0 {
		treeCount = 1
	}
	if treeCount < 1 || treeCount > domain.MaxTreesPerDonation {
		return nil, domain.ErrInvalidTreeCount
	}

	plantingLocation := req.PlantingLocation
	if plantingLocation == "" {
		plantingLocation = domain.DefaultPlantingLocation
	}

	tokensCost := treeCount * domain.TokensPerTree

	currentBalance, err := s.tokenRepository.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if currentBalance < tokensCost {
		return nil, &domain.InsufficientTokensError{Required: tokensCost, Current: currentBalance}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	certificateID, err := generateCertificateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	carbonOffset := fmt.Sprintf("~%dkg CO2/year", treeCount*domain.CarbonOffsetPerTree)
	plantingID := uuid.New()

	planting := &entities.TreePlanting{
		ID:               plantingID,
		UserID:           userUUID,
		TokensCost:       tokensCost,
		TreeCount:        treeCount,
		CertificateID:    certificateID,
		PlantingLocation: plantingLocation,
		Status:           entities.TreePlantingStatusConfirmed,
		Metadata: datatypes.JSONMap{
			"donation_date":           now.Format(time.RFC3339),
			"estimated_planting_date": now.AddDate(0, 0, domain.TreePlantingLeadDays).Format(time.RFC3339),
			"tree_species":            domain.PlantedTreeSpecies,
			"carbon_offset":           carbonOffset,
		},
	}

	sourceID := plantingID.String()
	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      -tokensCost,
		Kind:        entities.TokenKindSpent,
		Source:      entities.TokenSourceTree,
		SourceID:    &sourceID,
		Description: fmt.Sprintf("Planted %d %s for ESG initiative", treeCount, pluralTrees(treeCount)),
		Metadata: datatypes.JSONMap{
			"tree_planting_id":  plantingID.String(),
			"certificate_id":    certificateID,
			"tree_count":        treeCount,
			"planting_location": plantingLocation,
			"carbon_impact":     carbonOffset,
		},
		CreatedAt: now,
	}

	if err := s.treeRepository.CreateTreePlanting(ctx, planting, transaction); err != nil {
		return nil, err
	}

	// Certificate mail is best effort; the donation is already committed.
	if owner, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		body := certificateBody(owner.Name, certificateID, treeCount, plantingLocation, carbonOffset)
		if err := mailing.SendMail(owner.Email, "Your tree planting certificate", body); err != nil {
			log.Printf("failed to send certificate mail: %v", err)
		}
	}

	return &domain.PlantTreesResponse{
		ID:                    plantingID.String(),
		CertificateID:         certificateID,
		TreeCount:             treeCount,
		TokensCost:            tokensCost,
		PlantingLocation:      plantingLocation,
		EstimatedCarbonOffset: carbonOffset,
	}, nil
}

func (s *treeService) GetUserTrees(ctx context.Context, userID string, limit, offset int) (*domain.GetTreesResponse, error) {
	plantings, err := s.treeRepository.GetUserTreePlantings(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	totalTrees, err := s.treeRepository.GetUserTotalTrees(ctx, userID)
	if err != nil {
		return nil, err
	}

	trees := make([]*domain.TreePlanting, 0, len(plantings))
	for _, planting := range plantings {
		trees = append(trees, &domain.TreePlanting{
			ID:               planting.ID.String(),
			UserID:           planting.UserID.String(),
			TokensCost:       planting.TokensCost,
			TreeCount:        planting.TreeCount,
			CertificateID:    planting.CertificateID,
			PlantingLocation: planting.PlantingLocation,
			Status:           planting.Status,
			Metadata:         planting.Metadata,
			CreatedAt:        planting.CreatedAt,
		})
	}

	return &domain.GetTreesResponse{
		Trees:      trees,
		TotalTrees: totalTrees,
		Pagination: domain.Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: len(trees) == limit,
		},
	}, nil
}

const certificateCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func generateCertificateID() (string, error) {
	epoch := fmt.Sprintf("%d", time.Now().UnixMilli())
	suffix := ""
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(certificateCharset))))
		if err != nil {
			return "", err
		}
		suffix += string(certificateCharset[n.Int64()])
	}
	return fmt.Sprintf("CERT-%s-%s", epoch[len(epoch)-6:], suffix), nil
}

func pluralTrees(count int) string {
	if count == 1 {
		return "tree"
	}
	return "trees"
}

func certificateBody(name, certificateID string, treeCount int, location, carbonOffset string) string {
	return fmt.Sprintf(
		"<h2>Thank you, %s!</h2>"+
			"<p>Your donation plants %d %s at %s.</p>"+
			"<p>Certificate: <b>%s</b></p>"+
			"<p>Estimated carbon offset: %s</p>",
		name, treeCount, pluralTrees(treeCount), location, certificateID, carbonOffset,
	)
}
