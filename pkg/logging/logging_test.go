package logging

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "glustertopo-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer Close()

	require.NoError(t, Init(dir, "topo.log", "DEBUG", false))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("volume", "test").Debug("parsed volume")

	b, err := ioutil.ReadFile(filepath.Join(dir, "topo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "parsed volume")
	assert.Contains(t, string(b), "volume=test")
}

func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init("", "", "", false))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.Nil(t, logWriter)

	require.NoError(t, Init("", "stdout", "warn", false))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestInitBadLevel(t *testing.T) {
	assert.Error(t, Init("", "-", "chatty", false))
}

func TestInitBadDir(t *testing.T) {
	assert.Error(t, Init("/nonexistent/glustertopo", "topo.log", "info", false))
	assert.Nil(t, logWriter)
}

func TestFromModule(t *testing.T) {
	assert.True(t, fromModule(runtime.Frame{Function: moduleRepo + "/pkg/cliout.ParseVolumeInfoXML"}))
	assert.False(t, fromModule(runtime.Frame{Function: moduleRepo + "/pkg/logging.Init"}))
	assert.False(t, fromModule(runtime.Frame{Function: "github.com/sirupsen/logrus.(*Entry).Info"}))
}

func TestSourceLocationHook(t *testing.T) {
	var hook SourceLocationHook
	assert.Len(t, hook.Levels(), len(log.AllLevels))

	entry := log.NewEntry(log.StandardLogger())
	entry.Data = log.Fields{}
	assert.NoError(t, hook.Fire(entry))
}
