package dicomlog

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	old := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(old) })
	return buf
}

func TestVprintfRespectsLevel(t *testing.T) {
	buf := captureOutput(t)
	defer SetLevel(Level())

	SetLevel(0)
	Vprintf(1, "hidden %d", 1)
	require.Empty(t, buf.String())

	SetLevel(1)
	Vprintf(1, "shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
}

func TestWarnfSilencedAtMinusOne(t *testing.T) {
	buf := captureOutput(t)
	defer SetLevel(Level())

	SetLevel(-1)
	Warnf(logrus.Fields{"tag": "(0008,0005)"}, "dropped")
	require.Empty(t, buf.String())

	SetLevel(0)
	Warnf(logrus.Fields{"tag": "(0008,0005)"}, "kept")
	require.Contains(t, buf.String(), "kept")
	require.Contains(t, buf.String(), "(0008,0005)")
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	defer SetLevel(Level())

	SetLevel(0)
	Vprintf(0, "main dataset at offset %d", 132)
	require.Contains(t, buf.String(), `"component":"dicom"`)
	require.Contains(t, buf.String(), "main dataset at offset 132")
}
