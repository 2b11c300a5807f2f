// Package synth produces plausible fake lead records for seeding demo and
// test environments.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jocross/leadboard/internal/model"
)

// DefaultCount is the number of leads generated when no count is given.
const DefaultCount = 150

// windowStart is the earliest creation timestamp a generated lead can have.
// The window end is the generation time.
var windowStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator produces synthetic leads. The zero value is not usable; call
// New. Randomness and the clock are injectable so tests can be
// deterministic.
type Generator struct {
	rng   *rand.Rand
	now   func() time.Time
	vocab Vocab
	lower cases.Caser
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithClock sets the clock used for the sampling window end.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithVocab replaces the default vocabularies.
func WithVocab(v Vocab) Option {
	return func(g *Generator) { g.vocab = v }
}

// New creates a Generator seeded from the wall clock unless WithRand is
// given.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		vocab: DefaultVocab(),
		lower: cases.Lower(language.BrazilianPortuguese),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns exactly count leads with every field populated. IDs are
// left zero; the store assigns them on insert.
func (g *Generator) Generate(count int) []model.Lead {
	leads := make([]model.Lead, 0, count)
	end := g.now()

	for i := 0; i < count; i++ {
		name := g.pick(g.vocab.Names)
		leads = append(leads, model.Lead{
			Name:       name,
			Email:      g.email(name),
			Source:     g.pick(g.vocab.Sources),
			Campaign:   g.pick(g.vocab.Campaigns),
			HasPlan:    g.pick(g.vocab.PlanStatuses),
			PlanType:   g.pick(g.vocab.PlanTypes),
			AgeBracket: g.pick(g.vocab.AgeBrackets),
			Specialist: g.pick(g.vocab.Specialists),
			Summary:    g.pick(g.vocab.Summaries),
			WhatsApp:   g.phone(),
			CreatedAt:  g.timestamp(end),
		})
	}
	return leads
}

func (g *Generator) pick(items []string) string {
	return items[g.rng.Intn(len(items))]
}

// email derives the address from the lead's own name: locale-aware
// lowercasing, spaces collapsed to dots, plus a random domain. Accents are
// kept, matching the intake channel's historical data.
func (g *Generator) email(name string) string {
	local := strings.Join(strings.Fields(g.lower.String(name)), ".")
	return local + "@" + g.pick(g.vocab.EmailDomains)
}

// phone synthesizes a Brazilian mobile number: +55, a real area code, the
// mobile 9 prefix and a nine-digit subscriber number.
func (g *Generator) phone() string {
	n := g.rng.Intn(900000000) + 100000000
	return fmt.Sprintf("+55%s9%d", g.pick(g.vocab.AreaCodes), n)
}

// timestamp picks a uniformly random instant in [windowStart, end] by
// interpolating between the epoch-millisecond bounds. Sub-day distribution
// is uniform continuous, not bucketed by day.
func (g *Generator) timestamp(end time.Time) time.Time {
	span := end.UnixMilli() - windowStart.UnixMilli()
	if span <= 0 {
		return windowStart
	}
	return time.UnixMilli(windowStart.UnixMilli() + g.rng.Int63n(span+1)).UTC()
}
