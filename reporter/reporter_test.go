package reporter_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlscan/reporter"
)

func TestFormatUsesCatalogMessage(t *testing.T) {
	msg := reporter.Format("HTML1006", "nosuch")
	require.Equal(t, `unknown named entity "nosuch"`, msg)
}

func TestFormatUnknownCodeFallsBackToCode(t *testing.T) {
	require.Equal(t, "HTML9999", reporter.Format("HTML9999"))
}

func TestLogrusReportsAtCorrectLevel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	rep := reporter.NewLogrus(logger)

	rep.Report(reporter.Diagnostic{Code: "HTML1000", Severity: reporter.Warning, Message: "x", Line: 1, Column: 1})
	rep.Report(reporter.Diagnostic{Code: "HTML1007", Severity: reporter.Error, Message: "y", Line: 2, Column: 3})

	require.Len(t, hook.AllEntries(), 2)
	require.Equal(t, logrus.WarnLevel, hook.AllEntries()[0].Level)
	require.Equal(t, logrus.ErrorLevel, hook.AllEntries()[1].Level)
}

func TestDiscardNeverPanics(t *testing.T) {
	require.NotPanics(t, func() {
		reporter.Discard{}.Report(reporter.Diagnostic{Code: "HTML1000"})
	})
}
