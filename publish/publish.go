// Package publish copies an export to Cloud Storage and loads the route summaries
// into BigQuery.
package publish

import(
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	rp "github.com/skypies/routeprofit"
)

// SummariesFile is the NDJSON object a BigQuery load job reads from.
const SummariesFile = "route_summaries.json"

// Publisher knows where an export goes. Bucket is required; if Project is empty,
// no BigQuery load is submitted.
type Publisher struct {
	Bucket          string
	Folder          string // object name prefix inside the bucket
	Project         string
	Dataset         string
	Table           string
	CredentialsFile string

	Logger *slog.Logger
}

func (p Publisher)log() *slog.Logger {
	if p.Logger == nil { return slog.Default() }
	return p.Logger
}

func (p Publisher)clientOptions() []option.ClientOption {
	if p.CredentialsFile == "" { return nil }
	return []option.ClientOption{option.WithCredentialsFile(p.CredentialsFile)}
}

func (p Publisher)ObjectName(file string) string { return path.Join(p.Folder, file) }

func (p Publisher)GCSURI(file string) string {
	return fmt.Sprintf("gs://%s/%s", p.Bucket, p.ObjectName(file))
}

func ContentTypeFor(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":  return "text/csv"
	case ".json": return "application/json"
	case ".pdf":  return "application/pdf"
	case ".yaml", ".yml": return "application/yaml"
	}
	return "application/octet-stream"
}

// {{{ EncodeSummaries

// EncodeSummaries writes one JSON object per route, newline delimited, the format
// BigQuery loads from Cloud Storage.
func EncodeSummaries(w io.Writer, runID string, summaries []rp.RouteSummary) (int, error) {
	encoder := json.NewEncoder(w)
	n := 0
	for _,s := range summaries {
		if err := encoder.Encode(s.ForBigQuery(runID)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// }}}
// {{{ p.Exists, p.Upload, p.List

func (p Publisher)Exists(ctx context.Context, client *storage.Client, file string) (bool, error) {
	_,err := client.Bucket(p.Bucket).Object(p.ObjectName(file)).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("GCS-Stat %s: %v", p.GCSURI(file), err)
	}
	return true, nil
}

func (p Publisher)Upload(ctx context.Context, client *storage.Client, file string, r io.Reader) error {
	w := client.Bucket(p.Bucket).Object(p.ObjectName(file)).NewWriter(ctx)
	w.ContentType = ContentTypeFor(file)

	if _,err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("GCS-Write %s: %v", p.GCSURI(file), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("GCS-Close %s: %v", p.GCSURI(file), err)
	}
	p.log().Info("uploaded", "object", p.GCSURI(file))
	return nil
}

type ObjectInfo struct {
	Name    string
	Size    int64
	Updated time.Time
}

func (o ObjectInfo)String() string {
	return fmt.Sprintf("%8db %s {%s}", o.Size, o.Updated.Format("2006.01.02"), o.Name)
}

// List returns the objects under the publisher's folder, sorted by name.
func (p Publisher)List(ctx context.Context) ([]ObjectInfo, error) {
	client,err := storage.NewClient(ctx, p.clientOptions()...)
	if err != nil { return nil, err }
	defer client.Close()

	q := &storage.Query{Prefix: p.Folder}
	out := []ObjectInfo{}
	it := client.Bucket(p.Bucket).Objects(ctx, q)
	for {
		oa,err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GCS-Readdir [gs://%s]%s: %v", p.Bucket, q.Prefix, err)
		}
		out = append(out, ObjectInfo{oa.Name, oa.Size, oa.Updated})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// }}}
// {{{ p.SubmitLoadJob

// SubmitLoadJob loads an NDJSON object into the publisher's table, appending, and
// waits for the job to finish.
func (p Publisher)SubmitLoadJob(ctx context.Context, file string) error {
	client,err := bigquery.NewClient(ctx, p.Project, p.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating bigquery client: %v", err)
	}
	defer client.Close()

	gcsSrc := bigquery.NewGCSReference(p.GCSURI(file))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.AutoDetect = true

	loader := client.Dataset(p.Dataset).Table(p.Table).LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateIfNeeded
	loader.WriteDisposition = bigquery.WriteAppend

	job,err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("submission of load job: %v", err)
	}
	p.log().Info("load job submitted", "job", job.ID(), "src", p.GCSURI(file),
		"dest", fmt.Sprintf("%s.%s.%s", p.Project, p.Dataset, p.Table))

	status,err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting on load job %s: %v", job.ID(), err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("load job %s failed: %v", job.ID(), err)
	}
	return nil
}

// }}}
// {{{ p.PublishExport

// PublishExport uploads every file in dir, plus the NDJSON summaries, and then loads
// the summaries into BigQuery if a project is configured. Objects that already
// exist are left alone.
func (p Publisher)PublishExport(ctx context.Context, dir, runID string, summaries []rp.RouteSummary) error {
	if p.Bucket == "" { return fmt.Errorf("publish: no bucket") }

	client,err := storage.NewClient(ctx, p.clientOptions()...)
	if err != nil { return fmt.Errorf("creating storage client: %v", err) }
	defer client.Close()

	entries,err := os.ReadDir(dir)
	if err != nil { return err }

	for _,e := range entries {
		if e.IsDir() { continue }
		if exists,err := p.Exists(ctx, client, e.Name()); err != nil {
			return err
		} else if exists {
			p.log().Warn("object exists, skipping", "object", p.GCSURI(e.Name()))
			continue
		}

		f,err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil { return err }
		err = p.Upload(ctx, client, e.Name(), f)
		f.Close()
		if err != nil { return err }
	}

	var buf bytes.Buffer
	if _,err := EncodeSummaries(&buf, runID, summaries); err != nil { return err }
	if err := p.Upload(ctx, client, SummariesFile, &buf); err != nil { return err }

	if p.Project == "" { return nil }
	return p.SubmitLoadJob(ctx, SummariesFile)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
