package world

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bethropolis/worldedit/internal/event"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is written into every saved document.
const DocumentVersion = 1

type documentFile struct {
	Version     int              `yaml:"version"`
	Name        string           `yaml:"name"`
	Collections []collectionFile `yaml:"collections"`
}

type collectionFile struct {
	Name    string       `yaml:"name"`
	Loaded  bool         `yaml:"loaded"`
	Objects []objectFile `yaml:"objects,omitempty"`
}

type objectFile struct {
	Kind      Kind         `yaml:"kind"`
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Position  *types.Vec3  `yaml:"position,omitempty"`
	Points    []types.Vec3 `yaml:"points,omitempty"`
	Priority  int          `yaml:"priority,omitempty"`
	HalfWidth float32      `yaml:"half_width,omitempty"`
	Color     string       `yaml:"color,omitempty"`
	Range     float32      `yaml:"range,omitempty"`
	Species   string       `yaml:"species,omitempty"`
	Scale     float32      `yaml:"scale,omitempty"`
	Effect    string       `yaml:"effect,omitempty"`
}

func encodeObject(obj Object) (objectFile, error) {
	f := objectFile{Kind: obj.Kind(), ID: obj.ID(), Name: obj.Name()}
	if p, ok := obj.(Positioned); ok {
		pos := p.Position()
		f.Position = &pos
	}
	switch o := obj.(type) {
	case *Boundary:
		f.Points = o.Points()
		f.Priority = o.Priority
	case *Road:
		f.Points = o.Points()
		f.HalfWidth = o.HalfWidth
	case *Marker:
	case *PointLight:
		f.Color = o.Color
		f.Range = o.Range
	case *Tree:
		f.Species = o.Species
		f.Scale = o.Scale
	case *ParticleEffect:
		f.Effect = o.Effect
	default:
		return f, fmt.Errorf("cannot encode object %q of type %T", obj.Name(), obj)
	}
	return f, nil
}

func decodeObject(f objectFile) (Object, error) {
	var pos types.Vec3
	if f.Position != nil {
		pos = *f.Position
	}
	var obj Object
	switch f.Kind {
	case KindBoundary:
		b := NewBoundary(f.Name, f.Points)
		b.Priority = f.Priority
		obj = b
	case KindRoad:
		r := NewRoad(f.Name, f.Points)
		if f.HalfWidth > 0 {
			r.HalfWidth = f.HalfWidth
		}
		obj = r
	case KindMarker:
		obj = NewMarker(f.Name, pos)
	case KindLight:
		l := NewPointLight(f.Name, pos)
		if f.Color != "" {
			l.Color = f.Color
		}
		if f.Range > 0 {
			l.Range = f.Range
		}
		obj = l
	case KindTree:
		t := NewTree(f.Name, pos)
		if f.Species != "" {
			t.Species = f.Species
		}
		if f.Scale > 0 {
			t.Scale = f.Scale
		}
		obj = t
	case KindParticles:
		p := NewParticleEffect(f.Name, pos)
		if f.Effect != "" {
			p.Effect = f.Effect
		}
		obj = p
	default:
		return nil, fmt.Errorf("unknown object kind %q", f.Kind)
	}
	if f.ID != "" {
		if b, ok := obj.(interface{ setID(string) }); ok {
			b.setID(f.ID)
		}
	}
	return obj, nil
}

func (b *Base) setID(id string) { b.ObjectID = id }

// EncodeObjects renders objects as a YAML list, the clipboard format.
func EncodeObjects(objs []Object) ([]byte, error) {
	files := make([]objectFile, 0, len(objs))
	for _, o := range objs {
		f, err := encodeObject(o)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return yaml.Marshal(files)
}

// DecodeObjects parses a YAML list produced by EncodeObjects.
func DecodeObjects(data []byte) ([]Object, error) {
	var files []objectFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to parse objects: %w", err)
	}
	objs := make([]Object, 0, len(files))
	for _, f := range files {
		o, err := decodeObject(f)
		if err != nil {
			return nil, err
		}
		objs = append(objs, o)
	}
	return objs, nil
}

// MarshalDocument encodes the whole world, including unloaded collection content.
func (w *World) MarshalDocument() ([]byte, error) {
	doc := documentFile{Version: DocumentVersion, Name: w.Name}
	for _, c := range w.collections {
		cf := collectionFile{Name: c.name, Loaded: c.loaded}
		for _, o := range append(c.Objects(), c.pending...) {
			f, err := encodeObject(o)
			if err != nil {
				return nil, fmt.Errorf("collection %q: %w", c.name, err)
			}
			cf.Objects = append(cf.Objects, f)
		}
		doc.Collections = append(doc.Collections, cf)
	}
	return yaml.Marshal(&doc)
}

// UnmarshalDocument replaces the world's content with a decoded document.
// Object added events are not dispatched for decoded content.
func (w *World) UnmarshalDocument(data []byte) error {
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Version > DocumentVersion {
		return fmt.Errorf("document version %d is newer than supported version %d", doc.Version, DocumentVersion)
	}

	// Decode everything before touching w so a bad document leaves it intact.
	var collections []*Collection
	byName := make(map[string]*Collection)
	for _, cf := range doc.Collections {
		c, ok := byName[cf.Name]
		if !ok {
			c = &Collection{name: cf.Name, loaded: cf.Loaded, world: w}
			byName[cf.Name] = c
			collections = append(collections, c)
		}
		for _, f := range cf.Objects {
			o, err := decodeObject(f)
			if err != nil {
				return fmt.Errorf("collection %q: %w", cf.Name, err)
			}
			if c.loaded {
				c.objects = append(c.objects, o)
			} else {
				c.pending = append(c.pending, o)
			}
		}
	}

	w.reset()
	if doc.Name != "" {
		w.Name = doc.Name
	}
	w.collections = collections
	if len(w.collections) == 0 {
		w.NewCollection(DefaultCollectionName, true)
	}
	return nil
}

// SaveFile writes the document atomically through a temp file in the same directory.
func (w *World) SaveFile(path string) error {
	data, err := w.MarshalDocument()
	if err != nil {
		return fmt.Errorf("failed to encode world: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to save '%s': %w", path, err)
	}
	logger.Infof("World: saved %d collection(s) to %s", len(w.collections), path)
	w.dispatch(event.TypeDocumentSaved, event.DocumentData{FilePath: path})
	return nil
}

// LoadFile replaces the world's content with the document at path.
func (w *World) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", path, err)
	}
	if err := w.UnmarshalDocument(data); err != nil {
		return fmt.Errorf("failed to load '%s': %w", path, err)
	}
	logger.Infof("World: loaded %s (%d object(s))", path, w.ObjectCount())
	w.dispatch(event.TypeDocumentLoaded, event.DocumentData{FilePath: path})
	return nil
}

// AutoSavePath is where the autosave snapshot for a document lives.
func AutoSavePath(docPath string) string {
	if docPath == "" {
		docPath = "untitled.world"
	}
	return docPath + ".autosave.zst"
}

// WriteAutoSave writes a zstd-compressed snapshot.
func (w *World) WriteAutoSave(path string) error {
	data, err := w.MarshalDocument()
	if err != nil {
		return fmt.Errorf("failed to encode world: %w", err)
	}
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write autosave '%s': %w", path, err)
	}
	logger.Debugf("World: autosaved %d bytes to %s", buf.Len(), path)
	w.dispatch(event.TypeDocumentAutoSaved, event.DocumentData{FilePath: path})
	return nil
}

// ReadAutoSave decompresses an autosave snapshot into document bytes.
func ReadAutoSave(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
