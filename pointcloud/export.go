package pointcloud

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	csvComma = ';'
	// maxFrameGap is the largest number of missing frame indices filled with empty frames between two rows
	maxFrameGap = 1024
)

// ReadFramesCSV reads recorded frames. Each row is "frame;id;x;y;z", header row is optional.
// Frame indices start at 0 and must not decrease; missing indices become empty frames,
// but no more than maxFrameGap of them in a row.
func ReadFramesCSV(r io.Reader) ([]Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = csvComma
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	frames := make([]Frame, 0)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "Can't read CSV line %d", line)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "frame") {
			continue
		}
		frameIdx, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse frame index on line %d", line)
		}
		if frameIdx < len(frames)-1 || frameIdx < 0 {
			return nil, errors.Errorf("frame index %d on line %d is out of order", frameIdx, line)
		}
		if frameIdx-len(frames) > maxFrameGap {
			return nil, errors.Errorf("frame index %d on line %d skips more than %d frames", frameIdx, line, maxFrameGap)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse identifier on line %d", line)
		}
		var coords [3]float64
		for i := range coords {
			coords[i], err = strconv.ParseFloat(strings.TrimSpace(record[2+i]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "Can't parse coordinate on line %d", line)
			}
		}
		for len(frames) <= frameIdx {
			frames = append(frames, make(Frame, 0))
		}
		frames[frameIdx] = append(frames[frameIdx], FeatureObservation{
			ID:    PointIdentifier(id),
			Point: NewPoint3D(coords[0], coords[1], coords[2]),
		})
	}
	return frames, nil
}

// WritePointsCSV writes points as "x;y;z" rows preceded by a header.
// Coordinates use the shortest representation which parses back to the same value.
func WritePointsCSV(w io.Writer, points []Point3D) error {
	writer := csv.NewWriter(w)
	writer.Comma = csvComma
	err := writer.Write([]string{"x", "y", "z"})
	if err != nil {
		return errors.Wrap(err, "Can't write CSV header")
	}
	for _, p := range points {
		err = writer.Write([]string{formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z)})
		if err != nil {
			return errors.Wrap(err, "Can't write point")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush CSV")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
