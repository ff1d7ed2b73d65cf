package sink_test

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	_ "modernc.org/sqlite"

	"github.com/okian/sherrin/internal/sink"
	"github.com/okian/sherrin/pkg/factory"
)

func testDataset(t *testing.T, shape factory.Shape) *factory.Dataset {
	t.Helper()
	f, err := factory.New(factory.WithSeasonRange(1990, 1991), factory.WithSeed(21))
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	return f.Fixtures(shape)
}

func TestParseFormat(t *testing.T) {
	Convey("Given format names", t, func() {
		Convey("When the name is known", func() {
			for _, name := range []string{"json", "csv", "sqlite"} {
				format, err := sink.ParseFormat(name)
				So(err, ShouldBeNil)
				So(string(format), ShouldEqual, name)
			}
		})

		Convey("When the name is unknown", func() {
			_, err := sink.ParseFormat("parquet")
			So(errors.Is(err, sink.ErrUnknownFormat), ShouldBeTrue)
		})
	})
}

func TestWriteJSON(t *testing.T) {
	Convey("Given a table-shaped dataset", t, func() {
		ds := testDataset(t, factory.ShapeTable)
		path := filepath.Join(t.TempDir(), "fixtures.json")

		Convey("When writing JSON", func() {
			err := sink.WriteJSON(context.Background(), path, ds)
			So(err, ShouldBeNil)

			Convey("Then the file parses back into the same number of records", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)

				var records []map[string]any
				So(json.Unmarshal(data, &records), ShouldBeNil)
				So(len(records), ShouldEqual, ds.Len())
				So(records[0]["home_team"], ShouldNotBeBlank)
			})
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given a table-shaped dataset", t, func() {
		ds := testDataset(t, factory.ShapeTable)
		path := filepath.Join(t.TempDir(), "fixtures.csv")

		Convey("When writing CSV", func() {
			err := sink.WriteCSV(context.Background(), path, ds)
			So(err, ShouldBeNil)

			Convey("Then the file holds a header plus one line per row", func() {
				file, err := os.Open(path)
				So(err, ShouldBeNil)
				defer file.Close()

				lines, err := csv.NewReader(file).ReadAll()
				So(err, ShouldBeNil)
				So(len(lines), ShouldEqual, ds.Len()+1)
				So(lines[0], ShouldResemble, ds.Columns())
			})
		})
	})
}

func TestWriteSQLite(t *testing.T) {
	Convey("Given a table-shaped dataset", t, func() {
		ds := testDataset(t, factory.ShapeTable)
		path := filepath.Join(t.TempDir(), "fixtures.db")

		Convey("When writing to SQLite", func() {
			err := sink.WriteSQLite(context.Background(), path, "fixtures", ds)
			So(err, ShouldBeNil)

			Convey("Then the table holds every row", func() {
				db, err := sql.Open("sqlite", path)
				So(err, ShouldBeNil)
				defer db.Close()

				var count int
				So(db.QueryRow(`SELECT COUNT(*) FROM "fixtures"`).Scan(&count), ShouldBeNil)
				So(count, ShouldEqual, ds.Len())
			})

			Convey("And rewriting the same table stays idempotent", func() {
				So(sink.WriteSQLite(context.Background(), path, "fixtures", ds), ShouldBeNil)

				db, err := sql.Open("sqlite", path)
				So(err, ShouldBeNil)
				defer db.Close()

				var count int
				So(db.QueryRow(`SELECT COUNT(*) FROM "fixtures"`).Scan(&count), ShouldBeNil)
				So(count, ShouldEqual, ds.Len())
			})
		})
	})
}

func TestWriteDispatch(t *testing.T) {
	Convey("Given the generic writer", t, func() {
		Convey("When the dataset is record-shaped", func() {
			ds := testDataset(t, factory.ShapeRecords)
			err := sink.Write(context.Background(), sink.FormatJSON, filepath.Join(t.TempDir(), "out.json"), "fixtures", ds)

			Convey("Then it rejects the shape", func() {
				So(errors.Is(err, sink.ErrShape), ShouldBeTrue)
			})
		})

		Convey("When the format is unknown", func() {
			ds := testDataset(t, factory.ShapeTable)
			err := sink.Write(context.Background(), sink.Format("parquet"), filepath.Join(t.TempDir(), "out"), "fixtures", ds)

			Convey("Then it rejects the format", func() {
				So(errors.Is(err, sink.ErrUnknownFormat), ShouldBeTrue)
			})
		})
	})
}
