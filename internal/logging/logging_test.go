package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	a := assert.New(t)
	l := logrus.New()
	buf := &bytes.Buffer{}
	l.SetOutput(buf)

	require.NoError(t, Configure(l, "warn", "json"))
	a.Equal(logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	a.Equal(0, buf.Len())

	l.WithField("round", "abc").Warn("shown")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	a.Equal("shown", entry["msg"])
	a.Equal("abc", entry["round"])

	require.NoError(t, Configure(l, "", "text"))
	a.Equal(logrus.WarnLevel, l.GetLevel())
	a.IsType(&logrus.TextFormatter{}, l.Formatter)

	a.Error(Configure(l, "loud", "text"))
}
