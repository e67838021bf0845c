package pointcloud

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadFramesCSVReplay(t *testing.T) {
	file, err := os.Open("../data/frames_sample.csv")
	if err != nil {
		t.Error(err)
		return
	}
	defer file.Close()

	frames, err := ReadFramesCSV(file)
	if err != nil {
		t.Error(err)
		return
	}
	correctNumOfFrames := 4
	if len(frames) != correctNumOfFrames {
		t.Errorf("incorrect number of frames: %d, expected: %d", len(frames), correctNumOfFrames)
		return
	}
	if len(frames[2]) != 0 {
		t.Errorf("missing frame index should give empty frame, got %d observations", len(frames[2]))
	}

	acc := NewDefaultUniquePointAccumulator()
	cloud := NewCloud()
	newPerFrame := make([]int, len(frames))
	for i, frame := range frames {
		newPerFrame[i] = acc.AccumulateInto(frame, cloud)
	}
	if diff := cmp.Diff([]int{2, 1, 0, 2}, newPerFrame); diff != "" {
		t.Errorf("new points per frame mismatch (-want +got):\n%s", diff)
	}
	if acc.SeenCount() != 4 {
		t.Errorf("incorrect number of seen identifiers: %d, expected: %d", acc.SeenCount(), 4)
	}

	var buf bytes.Buffer
	err = WritePointsCSV(&buf, cloud.Points())
	if err != nil {
		t.Error(err)
		return
	}
	expected := "x;y;z\n" +
		"0;0;0\n" +
		"1;1;1\n" +
		"2;2;2\n" +
		"0;0;0\n" +
		"0;0;1\n"
	if buf.String() != expected {
		t.Errorf("wrong CSV output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestReadFramesCSVErrors(t *testing.T) {
	cases := map[string]string{
		"bad id":         "0;abc;0;0;0\n",
		"bad coord":      "0;1;0;x;0\n",
		"out of order":   "1;1;0;0;0\n0;2;0;0;0\n",
		"negative":       "-1;1;0;0;0\n",
		"short row":      "0;1;0;0\n",
		"huge gap":       "20000000;1;0;0;0\n",
		"gap in between": "0;1;0;0;0\n" + strconv.Itoa(maxFrameGap+2) + ";2;0;0;0\n",
	}
	for name, input := range cases {
		if _, err := ReadFramesCSV(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestReadFramesCSVNoHeader(t *testing.T) {
	frames, err := ReadFramesCSV(strings.NewReader("0;18446744073709551615;1.5;-2;3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 || frames[0][0].ID != PointIdentifier(18446744073709551615) {
		t.Errorf("wrong frames: %v", frames)
	}
	if frames[0][0].Point != NewPoint3D(1.5, -2, 3) {
		t.Errorf("wrong point: %v", frames[0][0].Point)
	}
}

func TestReadFramesCSVFrameGap(t *testing.T) {
	input := "0;1;0;0;0\n" + strconv.Itoa(maxFrameGap+1) + ";2;0;0;0\n"
	frames, err := ReadFramesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	correctNumOfFrames := maxFrameGap + 2
	if len(frames) != correctNumOfFrames {
		t.Errorf("incorrect number of frames: %d, expected: %d", len(frames), correctNumOfFrames)
	}
	if len(frames[maxFrameGap]) != 0 || len(frames[maxFrameGap+1]) != 1 {
		t.Errorf("gap should be filled with empty frames")
	}
}

func TestPointsCSVRoundTrip(t *testing.T) {
	points := []Point3D{
		NewPoint3D(1e-7, -2.5e-9, 0.1),
		NewPoint3D(123456.789, 1.0/3.0, -0),
	}
	var buf bytes.Buffer
	err := WritePointsCSV(&buf, points)
	if err != nil {
		t.Fatal(err)
	}
	// Turn written rows into a single frame and read it back
	var rows strings.Builder
	for i, line := range strings.Split(strings.TrimSpace(buf.String()), "\n")[1:] {
		rows.WriteString("0;" + strconv.Itoa(i) + ";" + line + "\n")
	}
	frames, err := ReadFramesCSV(strings.NewReader(rows.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("incorrect number of frames: %d, expected: %d", len(frames), 1)
	}
	if diff := cmp.Diff(points, CurrentPoints(frames[0])); diff != "" {
		t.Errorf("coordinates changed after round trip (-want +got):\n%s", diff)
	}
}
