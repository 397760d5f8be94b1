package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// EpisodeRow is the Parquet layout of an episode.
type EpisodeRow struct {
	Solver    string `parquet:"solver,dict"`
	Rows      int32  `parquet:"rows"`
	Cols      int32  `parquet:"cols"`
	Seed      int64  `parquet:"seed"`
	Outcome   string `parquet:"outcome,dict"`
	Length    int32  `parquet:"length"`
	Steps     int32  `parquet:"steps"`
	CreatedAt int64  `parquet:"created_at_unix"`
}

func toRow(e Episode) EpisodeRow {
	var created int64
	if !e.CreatedAt.IsZero() {
		created = e.CreatedAt.Unix()
	}
	return EpisodeRow{
		Solver:    e.Solver,
		Rows:      int32(e.Rows),
		Cols:      int32(e.Cols),
		Seed:      e.Seed,
		Outcome:   e.Outcome,
		Length:    int32(e.Length),
		Steps:     int32(e.Steps),
		CreatedAt: created,
	}
}

// Episode converts the row back to an episode record.
func (r EpisodeRow) Episode() Episode {
	e := Episode{
		Solver:  r.Solver,
		Rows:    int(r.Rows),
		Cols:    int(r.Cols),
		Seed:    r.Seed,
		Outcome: r.Outcome,
		Length:  int(r.Length),
		Steps:   int(r.Steps),
	}
	if r.CreatedAt != 0 {
		e.CreatedAt = time.Unix(r.CreatedAt, 0).UTC()
	}
	return e
}

// WriteEpisodesParquet writes episodes to outPath with zstd compression.
// The file is written next to outPath and renamed into place.
func WriteEpisodesParquet(outPath string, episodes []Episode) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("storage: create output dir: %w", err)
	}

	rows := make([]EpisodeRow, 0, len(episodes))
	for _, e := range episodes {
		rows = append(rows, toRow(e))
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "snake_episode_v1"),
	); err != nil {
		return fmt.Errorf("storage: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("storage: rename parquet: %w", err)
	}
	return nil
}

// ReadEpisodesParquet reads back a file written by WriteEpisodesParquet.
func ReadEpisodesParquet(path string) ([]EpisodeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("storage: stat parquet: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("storage: read parquet: %w", err)
	}

	reader := parquet.NewGenericReader[EpisodeRow](pf)
	defer reader.Close()

	rows := make([]EpisodeRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("storage: read parquet rows: %w", err)
	}
	return rows[:n], nil
}

// ImportEpisodesParquet loads an exported file into the store and returns
// the number of episodes added.
func (s *Store) ImportEpisodesParquet(path string) (int, error) {
	rows, err := ReadEpisodesParquet(path)
	if err != nil {
		return 0, err
	}
	for i, r := range rows {
		if _, err := s.SaveEpisode(r.Episode()); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}
