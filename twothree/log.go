package twothree

import "github.com/sirupsen/logrus"

// Log receives debug records for every structural change (root growth,
// splits, rotations, merges, root collapse). It only reports warnings
// unless the caller lowers its level.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
