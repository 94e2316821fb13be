package resources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "Config.toml", want: "Config.toml"},
		{key: "shaders/../Config.toml", want: "Config.toml"},
		{key: "a//b/./c.txt", want: "a/b/c.txt"},
		{key: "", wantErr: true},
		{key: "/etc/passwd", wantErr: true},
		{key: "../secret", wantErr: true},
		{key: "..", wantErr: true},
		{key: ".", wantErr: true},
		{key: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityOrder(t *testing.T) {
	low := NewMemory(map[string][]byte{"Config.toml": []byte("low"), "only-low": []byte("x")})
	high := NewMemory(map[string][]byte{"Config.toml": []byte("high")})

	res := New().
		LoadedFrom("low", 0, low).
		LoadedFrom("high", 10, high)

	assert.Equal(t, []string{"high", "low"}, res.Backends())

	data, ok := res.Resource("Config.toml").Get()
	require.True(t, ok)
	assert.Equal(t, "high", string(data))

	data, ok = res.Resource("only-low").Get()
	require.True(t, ok)
	assert.Equal(t, "x", string(data))

	_, ok = res.Resource("missing").Get()
	assert.False(t, ok)

	_, err := res.Resource("missing").Read()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSystemReadOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core", "Config.toml"), []byte("[window]\n"), 0o644))

	fsys := FromRelPath(dir, "core")
	res := New().LoadedFrom("core", 0, fsys)
	t.Cleanup(func() { res.Close() })

	data, ok := res.Resource("Config.toml").Get()
	require.True(t, ok)
	assert.Equal(t, "[window]\n", string(data))

	err := res.Resource("Config.toml").Write([]byte("x"))
	assert.ErrorIs(t, err, ErrNotWritable)

	assert.False(t, fsys.Exists("core"), "directories are not resources")
}

func TestFileSystemWriteBack(t *testing.T) {
	dir := t.TempDir()
	res := New().LoadedFrom("core", 0, FromRelPath(dir, "core").WithWrite())
	t.Cleanup(func() { res.Close() })

	require.NoError(t, res.Resource("nested/state.toml").Write([]byte("a = 1\n")))

	got, err := os.ReadFile(filepath.Join(dir, "core", "nested", "state.toml"))
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "core", "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestFileSystemWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Config.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	fsys := FromRelPath(dir, ".").WithWatch()
	res := New().LoadedFrom("core", 0, fsys)
	t.Cleanup(func() { res.Close() })
	if !fsys.Watching() {
		t.Skip("file watching unavailable")
	}

	cfg := res.Resource("Config.toml")
	_, ok := cfg.Get()
	require.True(t, ok)
	assert.False(t, cfg.Modified())

	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))

	assert.Eventually(t, cfg.Modified, 5*time.Second, 10*time.Millisecond)

	data, ok := cfg.Get()
	require.True(t, ok)
	assert.Equal(t, "a = 2\n", string(data))
}

func TestMemoryWriteMarksModified(t *testing.T) {
	res := New().LoadedFrom("mem", 0, NewMemory(nil))
	r := res.Resource("a.txt")

	require.NoError(t, r.Write([]byte("1")))
	assert.True(t, r.Modified())

	data, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, "1", string(data))
	assert.False(t, r.Modified())
}

func TestReadConsumesPendingChange(t *testing.T) {
	res := New().LoadedFrom("mem", 0, NewMemory(nil))
	r := res.Resource("a.txt")

	require.NoError(t, r.Write([]byte("1")))
	data, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, "1", string(data))
	assert.False(t, r.Modified())
}

func TestFileSystemReadAfterWatchedWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Config.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	fsys := FromRelPath(dir, ".").WithWatch()
	res := New().LoadedFrom("core", 0, fsys)
	t.Cleanup(func() { res.Close() })
	if !fsys.Watching() {
		t.Skip("file watching unavailable")
	}

	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	cfg := res.Resource("Config.toml")
	data, ok := cfg.Get()
	require.True(t, ok)
	assert.Equal(t, "a = 2\n", string(data))
	assert.False(t, cfg.Modified())
}
