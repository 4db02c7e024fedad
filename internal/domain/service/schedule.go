package service

import (
	"context"
	"sort"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

// classColors maps the well-known class categories to their display color.
// Custom categories fall through to the hashed palette below.
var classColors = map[string]string{
	"SPARRING":   "#d32f2f",
	"BOXEO":      "#1976d2",
	"KICKBOXING": "#f57c00",
	"MUAY THAI":  "#7b1fa2",
	"FUNCIONAL":  "#388e3c",
	"INFANTIL":   "#0097a7",
}

// fallbackPalette is the stable palette for custom category keys.
var fallbackPalette = []string{
	"#e53935", "#8e24aa", "#3949ab", "#039be5",
	"#00897b", "#7cb342", "#fdd835", "#fb8c00",
}

// hashPrime keeps the rolling key hash well distributed before it is
// folded onto the palette.
const hashPrime = 7919

// LegacyDefaultWeekdays is the fixed Friday/Saturday pair the calendar UI
// falls back to when no blocks exist at all. It predates recurring
// scheduling and is kept only for backward-compatible rendering; it is
// never applied by ActiveWeekdays itself.
var LegacyDefaultWeekdays = []int{5, 6}

// ActiveWeekdays returns the set of weekdays (0=Sunday) with at least one
// block not explicitly deactivated. Blocks without a day are skipped.
func ActiveWeekdays(blocks []entity.ClassBlock) map[int]struct{} {
	days := make(map[int]struct{})
	for _, b := range blocks {
		if b.DayOfWeek == nil || *b.DayOfWeek < 0 || *b.DayOfWeek > 6 {
			continue
		}
		if !b.IsActive() {
			continue
		}
		days[*b.DayOfWeek] = struct{}{}
	}
	return days
}

// ColorFor resolves a deterministic display color for a category key.
// Well-known keys always hit the table; any other key hashes onto the
// fallback palette so the same custom category renders the same color
// across sessions without storing an assignment.
func ColorFor(key string) string {
	if color, ok := classColors[key]; ok {
		return color
	}
	sum := 0
	pos := 0
	for _, r := range key {
		sum = (sum + int(r)*(pos+1)) % hashPrime
		pos++
	}
	return fallbackPalette[sum%len(fallbackPalette)]
}

// BlocksForWeekday filters blocks for one calendar column, ordered by
// start time.
func BlocksForWeekday(blocks []entity.ClassBlock, day int) []entity.ClassBlock {
	var out []entity.ClassBlock
	for _, b := range blocks {
		if b.DayOfWeek != nil && *b.DayOfWeek == day {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

type ClassBlockStorage interface {
	Create(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error)
	Get(ctx context.Context, id string) (*entity.ClassBlock, error)
	GetAll(ctx context.Context) ([]entity.ClassBlock, error)
	Update(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService struct {
	blockStorage ClassBlockStorage
}

func NewScheduleService(storage ClassBlockStorage) *ScheduleService {
	return &ScheduleService{
		blockStorage: storage,
	}
}

func (s *ScheduleService) Create(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	return s.blockStorage.Create(ctx, block)
}

func (s *ScheduleService) Get(ctx context.Context, id string) (*entity.ClassBlock, error) {
	return s.blockStorage.Get(ctx, id)
}

func (s *ScheduleService) GetAll(ctx context.Context) ([]entity.ClassBlock, error) {
	return s.blockStorage.GetAll(ctx)
}

func (s *ScheduleService) Update(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	return s.blockStorage.Update(ctx, block)
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	return s.blockStorage.Delete(ctx, id)
}

// ActiveWeekdays loads the full schedule and derives the active-day set.
func (s *ScheduleService) ActiveWeekdays(ctx context.Context) (map[int]struct{}, error) {
	blocks, err := s.blockStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ActiveWeekdays(blocks), nil
}

// StandingBlocks returns the permanent recurring blocks used for booking
// eligibility. One-off blocks are excluded.
func (s *ScheduleService) StandingBlocks(ctx context.Context) ([]entity.ClassBlock, error) {
	blocks, err := s.blockStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.ClassBlock
	for _, b := range blocks {
		if b.IsPermanent() {
			out = append(out, b)
		}
	}
	return out, nil
}
