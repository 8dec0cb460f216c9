package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// csvHeader is the backing-file contract. Column order is fixed so files
// written here stay interchangeable with the original tooling.
var csvHeader = []string{
	"PartnerName", "GymName", "Address", "Pincode",
	"Latitude", "Longitude", "SubscriptionAmount", "Amenities",
}

// ParseCSV reads gym records from r. Ids are assigned by row order,
// starting at 1. A missing column or an unparseable numeric field fails
// the whole parse with ErrDataFormat.
func ParseCSV(r io.Reader) ([]Gym, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrDataFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, name := range csvHeader {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrDataFormat, name)
		}
	}

	var gyms []Gym
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, row+1, err)
		}
		row++

		field := func(name string) string {
			return strings.TrimSpace(record[colIdx[name]])
		}

		lat, err := strconv.ParseFloat(field("Latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad latitude %q", ErrDataFormat, row, field("Latitude"))
		}
		lon, err := strconv.ParseFloat(field("Longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad longitude %q", ErrDataFormat, row, field("Longitude"))
		}
		amount, err := strconv.Atoi(field("SubscriptionAmount"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad subscription amount %q", ErrDataFormat, row, field("SubscriptionAmount"))
		}

		gyms = append(gyms, Gym{
			ID:                 row,
			PartnerName:        field("PartnerName"),
			GymName:            field("GymName"),
			Address:            field("Address"),
			Pincode:            field("Pincode"),
			Latitude:           lat,
			Longitude:          lon,
			SubscriptionAmount: amount,
			Amenities:          field("Amenities"),
		})
	}

	return gyms, nil
}

// writeCSVFile serializes the whole catalog to path via a temp file and an
// atomic rename, so a crash mid-write never leaves a truncated file.
func writeCSVFile(path string, gyms []Gym) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gyms-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	for _, g := range gyms {
		record := []string{
			g.PartnerName,
			g.GymName,
			g.Address,
			g.Pincode,
			strconv.FormatFloat(g.Latitude, 'f', -1, 64),
			strconv.FormatFloat(g.Longitude, 'f', -1, 64),
			strconv.Itoa(g.SubscriptionAmount),
			g.Amenities,
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// backupCSVFile copies path to a timestamped sibling before a bulk
// replace. Missing source is not an error (nothing to back up).
func backupCSVFile(path string, now time.Time) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	backup := fmt.Sprintf("%s.%s.bak", path, now.Format("20060102T150405"))
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", err
	}
	return backup, nil
}
