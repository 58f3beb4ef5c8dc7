package flatfile

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/mmynk/gymdesk/internal/models"
)

func TestPlanCodecWrite(t *testing.T) {
	var buf bytes.Buffer
	plans := []models.Plan{
		{ID: 2, Name: "Full", Price: 89.99, Description: "All access"},
		{ID: 1, Name: "Basic", Price: 30, Description: "Gym floor"},
	}
	if err := PlanCodec.Write(&buf, plans); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "2\n2|Full|89.99|All access\n1|Basic|30.00|Gym floor\n"
	if got := buf.String(); got != want {
		t.Errorf("Write output:\ngot  %q\nwant %q", got, want)
	}
}

func TestEquipmentAndMemberCodecWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := EquipmentCodec.Write(&buf, []models.Equipment{
		{ID: 1, Name: "Treadmill", Description: "Motorized", Quantity: 4},
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got, want := buf.String(), "1\n1|Treadmill|Motorized|4\n"; got != want {
		t.Errorf("equipment output: got %q, want %q", got, want)
	}

	buf.Reset()
	if err := MemberCodec.Write(&buf, []models.Member{
		{ID: 7, Username: "sam", Password: "pw", Name: "Sam Lee", CurrentPlanID: models.NoPlan},
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got, want := buf.String(), "1\n7|sam|pw|Sam Lee|-1\n"; got != want {
		t.Errorf("member output: got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("plans", func(t *testing.T) {
		in := []models.Plan{
			{ID: 1, Name: "Cardio", Price: 49.99, Description: "Cardio only"},
			{ID: 5, Name: "Full", Price: -3.5, Description: "Negative price is allowed"},
		}
		var buf bytes.Buffer
		if err := PlanCodec.Write(&buf, in); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		out, err := PlanCodec.Read(&buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip: got %+v, want %+v", out, in)
		}
	})

	t.Run("equipment", func(t *testing.T) {
		in := []models.Equipment{
			{ID: 3, Name: "Bench", Description: "Flat bench", Quantity: 2},
			{ID: 1, Name: "Rower", Description: "Air rower", Quantity: 0},
		}
		var buf bytes.Buffer
		EquipmentCodec.Write(&buf, in)
		out, err := EquipmentCodec.Read(&buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip: got %+v, want %+v", out, in)
		}
	})

	t.Run("members", func(t *testing.T) {
		in := []models.Member{
			{ID: 1, Username: "ana", Password: "secret", Name: "Ana Diaz", CurrentPlanID: 2},
			{ID: 2, Username: "bo", Password: "p w", Name: "Bo", CurrentPlanID: models.NoPlan},
		}
		var buf bytes.Buffer
		MemberCodec.Write(&buf, in)
		out, err := MemberCodec.Read(&buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip: got %+v, want %+v", out, in)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		var buf bytes.Buffer
		PlanCodec.Write(&buf, nil)
		if buf.String() != "0\n" {
			t.Errorf("empty output = %q, want %q", buf.String(), "0\n")
		}
		out, err := PlanCodec.Read(&buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("got %d records, want 0", len(out))
		}
	})
}

func TestPlanDescriptionMayContainDelimiter(t *testing.T) {
	in := "1\n4|Combo|59.00|Cardio | Weights\n"
	out, err := PlanCodec.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(out) != 1 || out[0].Description != "Cardio | Weights" {
		t.Errorf("got %+v, want description %q", out, "Cardio | Weights")
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		read      func(string) (int, error)
		wantCount int
	}{
		{
			name:      "invalid count line yields nothing",
			input:     "three\n1|Cardio|49.99|Cardio only\n",
			read:      readPlans,
			wantCount: 0,
		},
		{
			name:      "empty input yields nothing",
			input:     "",
			read:      readPlans,
			wantCount: 0,
		},
		{
			name:      "bad third plan keeps first two",
			input:     "4\n1|A|1.00|a\n2|B|2.00|b\n3|C|cheap|c\n4|D|4.00|d\n",
			read:      readPlans,
			wantCount: 2,
		},
		{
			name:      "plan with empty name is rejected",
			input:     "2\n1|A|1.00|a\n2||2.00|b\n",
			read:      readPlans,
			wantCount: 1,
		},
		{
			name:      "equipment description with delimiter breaks the record",
			input:     "2\n1|Bench|Flat|3\n2|Rack|Squat|rack|1\n",
			read:      readEquipment,
			wantCount: 1,
		},
		{
			name:      "member name with delimiter breaks the record",
			input:     "3\n1|a|p|A|-1\n2|b|p|B|x|-1\n3|c|p|C|-1\n",
			read:      readMembers,
			wantCount: 1,
		},
		{
			name:      "first record bad yields nothing",
			input:     "1\nnot-a-record\n",
			read:      readMembers,
			wantCount: 0,
		},
		{
			name:      "count larger than file content",
			input:     "5\n1|Bench|Flat|3\n",
			read:      readEquipment,
			wantCount: 1,
		},
		{
			name:      "overlong name is rejected",
			input:     "1\n1|" + strings.Repeat("x", models.MaxPlanNameLen+1) + "|1.00|a\n",
			read:      readPlans,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.read(tt.input)
			if !errors.Is(err, ErrMalformedData) {
				t.Errorf("error = %v, want ErrMalformedData", err)
			}
			if got != tt.wantCount {
				t.Errorf("loaded %d records, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestReadCapsAtCapacity(t *testing.T) {
	var b strings.Builder
	total := models.MaxPlans + 5
	fmt.Fprintf(&b, "%d\n", total)
	for i := 1; i <= total; i++ {
		fmt.Fprintf(&b, "%d|Plan %d|10.00|desc\n", i, i)
	}

	out, err := PlanCodec.Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(out) != models.MaxPlans {
		t.Errorf("loaded %d plans, want %d", len(out), models.MaxPlans)
	}
}

func TestReadToleratesBlankLinesAndCRLF(t *testing.T) {
	in := "2\r\n\r\n1|Bench|Flat|3\r\n2|Rack|Squat|1\r\n"
	out, err := EquipmentCodec.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []models.Equipment{
		{ID: 1, Name: "Bench", Description: "Flat", Quantity: 3},
		{ID: 2, Name: "Rack", Description: "Squat", Quantity: 1},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func readPlans(s string) (int, error) {
	out, err := PlanCodec.Read(strings.NewReader(s))
	return len(out), err
}

func readEquipment(s string) (int, error) {
	out, err := EquipmentCodec.Read(strings.NewReader(s))
	return len(out), err
}

func readMembers(s string) (int, error) {
	out, err := MemberCodec.Read(strings.NewReader(s))
	return len(out), err
}
