package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"
)

// CascadeWithdrawOnDelete names the deletion policy: soft-deleting an offer
// withdraws its pending applications in the same transaction, so no
// application is ever left undecidable against a missing offer.
const CascadeWithdrawOnDelete = true

// OfferLifecycle owns CompanyOffer creation, open/closed transitions,
// skill tagging and listing. Offer rows are mutated by this component only.
type OfferLifecycle struct {
	DB *database.DBinstanceStruct
}

// NewOfferLifecycle creates a new instance of OfferLifecycle with the provided database connection.
func NewOfferLifecycle(db *database.DBinstanceStruct) *OfferLifecycle {
	return &OfferLifecycle{DB: db}
}

// CreateOfferInput is everything a company provides when publishing an offer.
type CreateOfferInput struct {
	CompanyID   uuid.UUID  `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	SkillIDs    []uint     `json:"skill_ids"`
	Tags        []string   `json:"tags"`
}

// Create validates the input, resolves the referenced skills and stores a
// new offer with status open.
func (l *OfferLifecycle) Create(ctx context.Context, in CreateOfferInput) (*model.CompanyOffer, error) {
	if in.Title == "" {
		return nil, Validation("offer title must not be empty")
	}
	if in.Description == "" {
		return nil, Validation("offer description must not be empty")
	}
	if in.Type != model.OfferTypeStage && in.Type != model.OfferTypeAlternance {
		return nil, Validation("offer type must be %q or %q", model.OfferTypeStage, model.OfferTypeAlternance)
	}
	// Same-day offers are fine, yesterday's are not. Compare calendar dates:
	// the client's stated date against the server's, so a midnight timestamp
	// from a zone ahead of UTC is not pushed into yesterday.
	sy, sm, sd := in.StartDate.Date()
	ty, tm, td := time.Now().Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return nil, Validation("offer start date must not be in the past")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, Validation("offer end date must not precede its start date")
	}

	var company model.Company
	if err := l.DB.WithContext(ctx).First(&company, "user_id = ?", in.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, storageErr(err)
	}

	var skills []model.Skill
	if len(in.SkillIDs) > 0 {
		if err := l.DB.WithContext(ctx).Find(&skills, in.SkillIDs).Error; err != nil {
			return nil, storageErr(err)
		}
		if len(skills) != len(uniqueIDs(in.SkillIDs)) {
			return nil, Validation("one or more skill ids do not resolve to a live skill")
		}
	}

	offer := model.CompanyOffer{
		CompanyID: in.CompanyID,
		EditableOfferInfo: model.EditableOfferInfo{
			Title:       in.Title,
			Description: in.Description,
			Type:        in.Type,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Tags:        pq.StringArray(in.Tags),
		},
		Status: model.OfferStatusOpen,
		Skills: skills,
	}
	if err := l.DB.WithContext(ctx).Create(&offer).Error; err != nil {
		return nil, storageErr(err)
	}
	return &offer, nil
}

// Get returns one live offer with its skills preloaded.
func (l *OfferLifecycle) Get(ctx context.Context, offerID uint) (*model.CompanyOffer, error) {
	var offer model.CompanyOffer
	err := l.DB.WithContext(ctx).Preload("Skills").First(&offer, offerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, storageErr(err)
	}
	return &offer, nil
}

// Close sets the offer status to closed. Closing an already-closed offer is
// a no-op, not an error. Pending applications stay decidable; only new
// applications are refused from here on.
func (l *OfferLifecycle) Close(ctx context.Context, offerID uint) (*model.CompanyOffer, error) {
	var offer model.CompanyOffer
	if err := l.DB.WithContext(ctx).First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, storageErr(err)
	}

	if offer.Status == model.OfferStatusClosed {
		return &offer, nil
	}

	offer.Status = model.OfferStatusClosed
	if err := l.DB.WithContext(ctx).Model(&offer).Update("status", model.OfferStatusClosed).Error; err != nil {
		return nil, storageErr(err)
	}
	return &offer, nil
}

// ListOffersOptions filters the offer listing. All provided dimensions are
// ANDed together; the skill filter matches offers tagged with at least one
// of the given skills. Limit/Offset make the sequence bounded and
// restartable.
type ListOffersOptions struct {
	Type     string
	Status   string
	SkillIDs []uint
	Limit    int
	Offset   int
}

// List returns live offers matching the options, newest first.
func (l *OfferLifecycle) List(ctx context.Context, opt ListOffersOptions) ([]model.CompanyOffer, error) {
	q := l.DB.WithContext(ctx).Preload("Skills").Model(&model.CompanyOffer{})

	if opt.Type != "" {
		q = q.Where("type = ?", opt.Type)
	}
	if opt.Status != "" {
		q = q.Where("status = ?", opt.Status)
	}
	if len(opt.SkillIDs) > 0 {
		q = q.Where(
			"id IN (SELECT company_offer_id FROM company_offer_skills WHERE skill_id IN ?)",
			opt.SkillIDs,
		)
	}

	limit := opt.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var offers []model.CompanyOffer
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(opt.Offset).
		Find(&offers).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return offers, nil
}

// Delete soft-deletes an offer. Per CascadeWithdrawOnDelete its pending
// applications are withdrawn in the same transaction.
func (l *OfferLifecycle) Delete(ctx context.Context, offerID uint) error {
	return l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var offer model.CompanyOffer
		if err := tx.First(&offer, offerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOfferNotFound
			}
			return storageErr(err)
		}

		if CascadeWithdrawOnDelete {
			err := tx.Model(&model.StudentApply{}).
				Where("company_offer_id = ? AND status = ?", offerID, model.ApplyStatusPending).
				Update("status", model.ApplyStatusWithdrawn).Error
			if err != nil {
				return storageErr(err)
			}
		}

		if err := tx.Delete(&offer).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
