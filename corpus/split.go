package corpus

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

var (
	ErrInvalidRatios   = errors.New("corpus: split ratios must be positive and sum to 1")
	ErrStratumTooSmall = errors.New("corpus: stratum has fewer than 2 members")
)

const (
	// absorbs float error in products such as (1-0.8)*10
	ratioTolerance = 1e-9
	minStratumSize = 2
)

// Merge folds the stratum From into To before splitting.
type Merge struct {
	From string `mapstructure:"from" yaml:"from"`
	To   string `mapstructure:"to" yaml:"to"`
}

type SplitOptions struct {
	Train float64 `mapstructure:"train" yaml:"train"`
	Val   float64 `mapstructure:"val" yaml:"val"`
	Test  float64 `mapstructure:"test" yaml:"test"`
	Seed  int64   `mapstructure:"seed" yaml:"seed"`
	Merge []Merge `mapstructure:"merge" yaml:"merge"`
}

func (o SplitOptions) Validate() error {
	if o.Train <= 0 || o.Val <= 0 || o.Test <= 0 {
		return ErrInvalidRatios
	}
	if math.Abs(o.Train+o.Val+o.Test-1) > 1e-6 {
		return ErrInvalidRatios
	}
	return nil
}

// Stratum returns the "group-age" key of r after merges are applied.
func (o SplitOptions) Stratum(r Record) string {
	key := fmt.Sprintf("%s-%d", r.Group, r.Age)
	for _, m := range o.Merge {
		if key == m.From {
			return m.To
		}
	}
	return key
}

type Split struct {
	Train []Record
	Dev   []Record
	Test  []Record
}

// StratifiedSplit divides records into train, dev and test sets in two
// stages: train against the rest, then the rest into dev and test. Both
// stages keep the stratum proportions and draw from the same seeded source,
// so equal input and options always give the same split. Each set is
// returned sorted with SortRecords.
func StratifiedSplit(records []Record, opts SplitOptions) (Split, error) {
	if err := opts.Validate(); err != nil {
		return Split{}, err
	}
	rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)))

	train, rest, err := splitStage(records, opts.Stratum, 1-opts.Train, rng)
	if err != nil {
		return Split{}, fmt.Errorf("train split: %w", err)
	}
	devShare := opts.Val / (opts.Val + opts.Test)
	dev, test, err := splitStage(rest, opts.Stratum, 1-devShare, rng)
	if err != nil {
		return Split{}, fmt.Errorf("dev/test split: %w", err)
	}

	SortRecords(train)
	SortRecords(dev)
	SortRecords(test)
	return Split{Train: train, Dev: dev, Test: test}, nil
}

type stratum struct {
	key     string
	members []Record
	quota   int
	rem     float64
}

// splitStage holds out ceil(heldShare*n) records, spread over the strata in
// proportion to their size with largest-remainder rounding.
func splitStage(records []Record, key func(Record) string, heldShare float64, rng *rand.Rand) (kept, held []Record, err error) {
	n := len(records)
	if n == 0 {
		return nil, nil, nil
	}
	nHeld := int(math.Ceil(heldShare*float64(n) - ratioTolerance))
	nHeld = max(0, min(nHeld, n))

	byKey := map[string]*stratum{}
	var strata []*stratum
	for _, r := range records {
		k := key(r)
		s, ok := byKey[k]
		if !ok {
			s = &stratum{key: k}
			byKey[k] = s
			strata = append(strata, s)
		}
		s.members = append(s.members, r)
	}
	sort.Slice(strata, func(i, j int) bool { return strata[i].key < strata[j].key })

	assigned := 0
	for _, s := range strata {
		if len(s.members) < minStratumSize {
			return nil, nil, fmt.Errorf("%w: %s", ErrStratumTooSmall, s.key)
		}
		exact := float64(nHeld) * float64(len(s.members)) / float64(n)
		s.quota = int(math.Floor(exact))
		s.rem = exact - float64(s.quota)
		assigned += s.quota
	}

	order := make([]*stratum, len(strata))
	copy(order, strata)
	sort.SliceStable(order, func(i, j int) bool { return order[i].rem > order[j].rem })
	for i := 0; assigned < nHeld; i = (i + 1) % len(order) {
		if order[i].quota < len(order[i].members) {
			order[i].quota++
			assigned++
		}
	}

	for _, s := range strata {
		members := make([]Record, len(s.members))
		copy(members, s.members)
		rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
		held = append(held, members[:s.quota]...)
		kept = append(kept, members[s.quota:]...)
	}
	return kept, held, nil
}
