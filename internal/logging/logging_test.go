package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapterLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug text", "debug", "text"},
		{"info json", "info", "json"},
		{"invalid level falls back", "chatty", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tc.level, tc.format)
			assert.NotNil(t, logger)
		})
	}
}

func TestLogrusAdapterWritesFields(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetLevel(logrus.DebugLevel)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField(FieldMerchant, "DMART").Info("parsed")

	output := buf.String()
	assert.Contains(t, output, `"merchant":"DMART"`)
	assert.Contains(t, output, `"msg":"parsed"`)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: FieldCount, Value: 3})
	mock.Warn("careful")
	mock.Infof("processed %d files", 2)

	assert.Len(t, mock.GetEntries(), 3)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.True(t, mock.HasEntry("INFO", "processed 2 files"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLoggerWithError(t *testing.T) {
	mock := &MockLogger{}
	derived := mock.WithError(errors.New("boom")).(*MockLogger)
	derived.Error("failed")

	assert.Len(t, derived.Entries, 1)
	assert.EqualError(t, derived.Entries[0].Error, "boom")
}

func TestGetLoggerIsSingleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

func TestFieldConstants(t *testing.T) {
	for name, value := range map[string]string{
		"FieldFile":       FieldFile,
		"FieldMerchant":   FieldMerchant,
		"FieldCategory":   FieldCategory,
		"FieldTotal":      FieldTotal,
		"FieldCount":      FieldCount,
		"FieldInputFile":  FieldInputFile,
		"FieldOutputFile": FieldOutputFile,
	} {
		assert.NotEmpty(t, value, "%s constant should not be empty", name)
	}
}
