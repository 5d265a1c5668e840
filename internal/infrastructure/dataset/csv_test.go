package dataset_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/internal/infrastructure/dataset"
	"launch_dashboard/pkg/errcodes"
)

func TestCSVLoaderLoad(t *testing.T) {
	rq := require.New(t)

	table, err := dataset.NewCSVLoader(filepath.Join("testdata", "launches.csv")).Load(context.Background())
	rq.NoError(err)

	rq.Equal(16, table.Len())
	rq.Equal([]string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, table.Sites())
	rq.Equal(entity.LaunchRecord{
		FlightNumber:           26,
		LaunchSite:             "VAFB SLC-4E",
		PayloadMassKg:          9600,
		BoosterVersion:         "F9 FT B1029.1",
		BoosterVersionCategory: "FT",
		Outcome:                value.OutcomeSuccess,
	}, table.Records()[9])
}

func TestCSVLoaderDelimiter(t *testing.T) {
	rq := require.New(t)

	table, err := dataset.NewCSVLoader(
		filepath.Join("testdata", "semicolon.csv"),
		dataset.WithDelimiter(';'),
	).Load(context.Background())
	rq.NoError(err)

	rq.Equal(2, table.Len())
	rq.Zero(table.Records()[0].FlightNumber)
}

func TestCSVLoaderMissingFile(t *testing.T) {
	rq := require.New(t)

	_, err := dataset.NewCSVLoader(filepath.Join("testdata", "absent.csv")).Load(context.Background())
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.DatasetUnreadable))
}

func TestReadRecordsRejectsBadInput(t *testing.T) {
	rq := require.New(t)

	const header = "Launch Site,Payload Mass (kg),Booster Version Category,class\n"

	testCases := []struct {
		name     string
		input    string
		code     string
		contains string
	}{
		{
			name:     "Empty file",
			input:    "",
			code:     string(errcodes.DatasetEmpty),
			contains: "no header",
		},
		{
			name:     "Header only",
			input:    header,
			code:     string(errcodes.DatasetEmpty),
			contains: "no records",
		},
		{
			name:     "Missing class column",
			input:    "Launch Site,Payload Mass (kg),Booster Version Category\nKSC LC-39A,2490,FT\n",
			code:     string(errcodes.DatasetSchemaMismatch),
			contains: `"class"`,
		},
		{
			name:     "Outcome out of domain",
			input:    header + "KSC LC-39A,2490,FT,1\nKSC LC-39A,2490,FT,3\n",
			code:     string(errcodes.DatasetInvalidRecord),
			contains: "line 3",
		},
		{
			name:     "Negative payload",
			input:    header + "KSC LC-39A,-5,FT,1\n",
			code:     string(errcodes.DatasetInvalidRecord),
			contains: "non-negative",
		},
		{
			name:     "Payload not a number",
			input:    header + "KSC LC-39A,heavy,FT,1\n",
			code:     string(errcodes.DatasetInvalidRecord),
			contains: "Payload Mass (kg)",
		},
		{
			name:     "Ragged row",
			input:    header + "KSC LC-39A,2490,FT\n",
			code:     string(errcodes.DatasetUnreadable),
			contains: "read record",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			records, err := dataset.ReadRecords(strings.NewReader(tc.input), ',')
			rq.Error(err)
			rq.Nil(records)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
			rq.ErrorContains(err, tc.contains)
		})
	}
}

func TestReadRecordsHeaderTolerance(t *testing.T) {
	rq := require.New(t)

	input := "\uFEFFclass, Booster Version Category ,Launch Site,Payload Mass (kg)\n1,B5,CCAFS SLC-40,6092\n"

	records, err := dataset.ReadRecords(strings.NewReader(input), ',')
	rq.NoError(err)
	rq.Equal([]entity.LaunchRecord{{
		LaunchSite:             "CCAFS SLC-40",
		PayloadMassKg:          6092,
		BoosterVersionCategory: "B5",
		Outcome:                value.OutcomeSuccess,
	}}, records)
}
