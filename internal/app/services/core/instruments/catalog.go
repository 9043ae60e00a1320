package instruments

import (
	"fmt"
	"sync"
)

// Catalog is the read-only registry of joint regions. It is safe for
// concurrent use once built.
type Catalog struct {
	joints []*JointRegion
	byKey  map[string]*JointRegion
}

var (
	defaultCatalog     *Catalog
	onceDefaultCatalog sync.Once
)

// DefaultCatalog returns the built-in instrument catalog.
func DefaultCatalog() *Catalog {
	onceDefaultCatalog.Do(func() {
		catalog, err := NewCatalog(
			kneeRegion(),
			spineRegion(),
			shoulderElbowRegion(),
			hipRegion(),
			wristHandRegion(),
			ankleFootRegion(),
		)
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

func NewCatalog(regions ...*JointRegion) (*Catalog, error) {
	catalog := &Catalog{
		joints: make([]*JointRegion, 0, len(regions)),
		byKey:  make(map[string]*JointRegion, len(regions)),
	}
	for _, region := range regions {
		if region == nil || region.Key == "" {
			return nil, fmt.Errorf("%w: joint region without key", ErrInvalidCatalog)
		}
		if _, exists := catalog.byKey[region.Key]; exists {
			return nil, fmt.Errorf("%w: joint %s declared twice", ErrInvalidCatalog, region.Key)
		}

		seen := make(map[string]bool, len(region.Instruments))
		for _, instrument := range region.Instruments {
			if err := instrument.validate(); err != nil {
				return nil, err
			}
			if seen[instrument.ID] {
				return nil, fmt.Errorf("%w: joint %s declares instrument %s twice", ErrInvalidCatalog, region.Key, instrument.ID)
			}
			seen[instrument.ID] = true

			// Scoring the extremes catches tables whose primary metric is
			// not produced by their formula.
			lowest, _ := instrument.Extremes()
			result, _, err := instrument.Evaluate(lowest)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
			}
			if result.PrimaryName() != instrument.Primary {
				return nil, fmt.Errorf("%w: instrument %s reports primary %q, declared %q", ErrInvalidCatalog, instrument.ID, result.PrimaryName(), instrument.Primary)
			}
		}

		catalog.joints = append(catalog.joints, region)
		catalog.byKey[region.Key] = region
	}
	return catalog, nil
}

func (c *Catalog) ListJoints() []*JointRegion {
	joints := make([]*JointRegion, len(c.joints))
	copy(joints, c.joints)
	return joints
}

func (c *Catalog) GetJoint(jointKey string) (*JointRegion, error) {
	region, ok := c.byKey[jointKey]
	if !ok {
		return nil, fmt.Errorf("%w: joint %q", ErrNotFound, jointKey)
	}
	return region, nil
}

func (c *Catalog) GetInstruments(jointKey string) ([]*Instrument, error) {
	region, err := c.GetJoint(jointKey)
	if err != nil {
		return nil, err
	}
	list := make([]*Instrument, len(region.Instruments))
	copy(list, region.Instruments)
	return list, nil
}

func (c *Catalog) GetInstrument(jointKey, instrumentID string) (*Instrument, error) {
	region, err := c.GetJoint(jointKey)
	if err != nil {
		return nil, err
	}
	for _, instrument := range region.Instruments {
		if instrument.ID == instrumentID {
			return instrument, nil
		}
	}
	return nil, fmt.Errorf("%w: instrument %q in joint %q", ErrNotFound, instrumentID, jointKey)
}

func newInstrument(instrument Instrument, score ScoreFunc, ladder Ladder) *Instrument {
	instrument.Score = score
	instrument.Ladder = ladder
	instrument.Interpret = ladder.Interpreter()
	return &instrument
}
