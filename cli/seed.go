package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"

	"github.com/sairarat/2-3-Binary-Tree/twothree"
)

// Seed inserts up to records distinct random values from [1, maxValue] into t
// and returns how many were inserted. Values already in the tree are skipped.
func Seed(t *twothree.Tree, records, maxValue int) (int, error) {
	if records <= 0 {
		return 0, nil
	}
	if maxValue < 1 {
		return 0, errors.Newf("seed range [1, %d] is empty", maxValue)
	}
	values, err := faker.RandomInt(1, maxValue, records)
	if err != nil {
		return 0, errors.Wrap(err, "generate seed values")
	}

	inserted := 0
	for _, v := range values {
		if err := t.Insert(v); err != nil {
			if errors.Is(err, twothree.ErrDuplicateKey) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	twothree.Log.WithFields(logrus.Fields{
		"op": "seed", "requested": records, "inserted": inserted,
	}).Info("seeded tree")
	return inserted, nil
}
