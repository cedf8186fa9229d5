package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/store"
)

func TestNewDefaultService(t *testing.T) {
	root := t.TempDir()
	svc, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path := filepath.Join(root, "note.md")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := svc.LoadDocument(context.Background(), path, core.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if doc.Content != "hello\n" {
		t.Errorf("Content = %q", doc.Content)
	}
}

func TestNewHonorsFileConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, store.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("read_only: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	svc, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := &core.Document{Content: "x", Pathname: filepath.Join(root, "note.md"), LineEnding: core.LineEndingLF}
	if _, err := svc.SaveDocument(context.Background(), doc); err != core.ErrReadOnly {
		t.Errorf("SaveDocument = %v, want ErrReadOnly from file config", err)
	}
}

func TestNewSkipsFileConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, store.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("read_only: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	svc, err := New(root, WithoutFileConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := &core.Document{Content: "x\n", Pathname: filepath.Join(root, "note.md"), LineEnding: core.LineEndingLF}
	if _, err := svc.SaveDocument(context.Background(), doc); err != nil {
		t.Errorf("SaveDocument = %v, want file config ignored", err)
	}
}

func TestNewRejectsBrokenFileConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, store.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("preferred_line_ending: cr\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(root); err == nil {
		t.Error("expected error for invalid file config")
	}
}

type fakeStore struct {
	loaded string
}

func (f *fakeStore) Load(ctx context.Context, pathname string, opts core.LoadOptions) (*core.Document, error) {
	f.loaded = pathname
	return &core.Document{Pathname: pathname}, nil
}

func (f *fakeStore) Save(ctx context.Context, doc *core.Document) ([]string, error) {
	return nil, nil
}

func (f *fakeStore) SaveAs(ctx context.Context, doc *core.Document, pathname string, opts core.SaveOptions) ([]string, error) {
	return nil, nil
}

func (f *fakeStore) RemovePaths(ctx context.Context, paths []string) error {
	return nil
}

func TestNewWithInjectedStore(t *testing.T) {
	fake := &fakeStore{}
	svc, err := New("", WithStore(fake))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := svc.LoadDocument(context.Background(), "/any/path.md", core.LoadOptions{}); err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if fake.loaded != "/any/path.md" {
		t.Errorf("injected store not used, loaded = %q", fake.loaded)
	}
}
