package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/servicehub/servicehub-core/internal/app/errors"
	"gorm.io/gorm"
)

// Business identifier prefixes.
const (
	QuoteNumberPrefix    = "QT"
	ProposalNumberPrefix = "PR"
	OrderNumberPrefix    = "SO"
)

const maxIdentifierAttempts = 100

// NumberingService produces collision-checked business identifiers of the
// form PREFIX-YYYYMMDD-NNNN with a cryptographically random 4-digit suffix.
type NumberingService struct {
	db      *gorm.DB
	now     func() time.Time
	randInt func(max int64) (int64, error)
}

func NewNumberingService(db *gorm.DB) *NumberingService {
	return &NumberingService{
		db:      db,
		now:     time.Now,
		randInt: cryptoRandBelow,
	}
}

// Generate returns an identifier unique across the full historical record set
// for the given model and column, soft-deleted rows included, so a number
// used by a now-deleted record is never reissued. The unique index on the
// column is the backstop for the window between this check and the insert.
func (s *NumberingService) Generate(model any, column, prefix string) (string, error) {
	return s.generate(prefix, func(candidate string) (bool, error) {
		var count int64
		err := s.db.Unscoped().Model(model).
			Where(fmt.Sprintf("%s = ?", column), candidate).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

func (s *NumberingService) generate(prefix string, exists func(string) (bool, error)) (string, error) {
	today := s.now().Format("20060102")

	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		n, err := s.randInt(10000)
		if err != nil {
			return "", errors.NewInternalServerError(err, "Failed to draw identifier suffix")
		}

		candidate := fmt.Sprintf("%s-%s-%04d", prefix, today, n)

		taken, err := exists(candidate)
		if err != nil {
			return "", errors.NewInternalServerError(err, "Failed to check identifier uniqueness")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errors.NewIdentifierExhaustedError(prefix)
}

func cryptoRandBelow(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
