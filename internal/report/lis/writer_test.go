package lis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mos-device-mgr/internal/model"
)

func createTestDeviceSet() *model.DeviceSet {
	return &model.DeviceSet{
		Source:   "devices.conf",
		BasePath: "SuperNEMO:/Demonstrator/CMS",
		Devices: []*model.DeviceRecord{
			{
				XMLFile:     "config/coil/ps.xml",
				MountPoint:  "SuperNEMO:/Demonstrator/CMS/Coil/PS/",
				MountPoint2: "Coil/PS",
				OutputDir:   "coil",
				ModelName:   "sndemo.mos.Coil.ps",
			},
			{
				XMLFile:     "config/dbm.xml",
				MountPoint:  "SuperNEMO:/Demonstrator/CMS/DBM",
				MountPoint2: "DBM",
				OutputDir:   "dbm",
				ModelName:   "sndemo.mos.dbm",
			},
		},
	}
}

func TestWriter_Format(t *testing.T) {
	assert.Equal(t, "lis", NewWriter().Format())
}

func TestWriter_Write_NilSet(t *testing.T) {
	err := NewWriter().Write(nil, filepath.Join(t.TempDir(), "out.lis"))
	assert.Error(t, err)
}

func TestWriter_Write_Success(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "sndemo_mos_devices.lis")

	require.NoError(t, NewWriter().Write(createTestDeviceSet(), outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	expected := "config/coil/ps.xml;SuperNEMO:/Demonstrator/CMS/Coil/PS/;Coil/PS;coil;sndemo.mos.Coil.ps\n" +
		"config/dbm.xml;SuperNEMO:/Demonstrator/CMS/DBM;DBM;dbm;sndemo.mos.dbm\n"
	assert.Equal(t, expected, string(data))
}

func TestWriter_Write_Overwrites(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.lis")
	require.NoError(t, os.WriteFile(outputPath, []byte("stale content that is longer than the new one\n\n\n"), 0644))

	set := createTestDeviceSet()
	set.Devices = set.Devices[1:]
	require.NoError(t, NewWriter().Write(set, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "config/dbm.xml;SuperNEMO:/Demonstrator/CMS/DBM;DBM;dbm;sndemo.mos.dbm\n", string(data))
}

func TestWriter_Write_EmptySet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.lis")

	require.NoError(t, NewWriter().Write(&model.DeviceSet{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriter_Write_Deterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.lis")
	second := filepath.Join(dir, "second.lis")

	require.NoError(t, NewWriter().Write(createTestDeviceSet(), first))
	require.NoError(t, NewWriter().Write(createTestDeviceSet(), second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriter_Write_MissingDirectory(t *testing.T) {
	err := NewWriter().Write(createTestDeviceSet(), filepath.Join(t.TempDir(), "missing", "out.lis"))
	assert.Error(t, err)
}
