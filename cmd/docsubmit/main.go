package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		addr     = flag.String("addr", "localhost:8080", "pipelined gRPC address")
		owner    = flag.String("owner", "", "owner id for the document (required)")
		file     = flag.String("file", "", "path to the document to submit (required)")
		meta     = flag.String("meta", "", "metadata JSON object, e.g. '{\"born_digital\":true}'")
		priority = flag.Int("priority", 0, "dispatch priority (0 uses the server default)")
		wait     = flag.Bool("wait", false, "poll until the document reaches a terminal status")
		interval = flag.Duration("interval", 2*time.Second, "poll interval with --wait")
	)
	flag.Parse()

	if *owner == "" || *file == "" {
		printError("Error: --owner and --file are required\n")
		flag.Usage()
		os.Exit(1)
	}
	absPath, err := filepath.Abs(*file)
	if err != nil {
		printError("Error: resolving path %q: %v\n", *file, err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		printError("Error: connecting to %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()
	client := v1.NewIntakeServiceClient(conn)

	resp, err := client.CreateDocument(ctx, &v1.CreateDocumentRequest{
		OwnerId:      *owner,
		Filename:     filepath.Base(absPath),
		SourcePath:   absPath,
		MetadataJson: *meta,
		Priority:     int32(*priority),
	})
	if err != nil {
		printError("Error: submit failed: %v\n", err)
		os.Exit(1)
	}
	doc := resp.GetDocument()
	fmt.Printf("submitted %s as document %s (plan: %v)\n", doc.GetFilename(), doc.GetId(), doc.GetStepPlan())

	if !*wait {
		return
	}

	for {
		time.Sleep(*interval)
		got, err := client.GetDocument(ctx, &v1.GetDocumentRequest{DocumentId: doc.GetId()})
		if err != nil {
			printError("Error: polling document: %v\n", err)
			os.Exit(1)
		}
		d := got.GetDocument()
		fmt.Printf("status=%s\n", d.GetStatus())
		if constants.DocumentStatus(d.GetStatus()).IsTerminal() {
			printSummary(d, got.GetJobs())
			if d.GetStatus() != string(constants.DocumentCompleted) {
				os.Exit(1)
			}
			return
		}
	}
}

func printSummary(d *v1.Document, jobs []*v1.Job) {
	fmt.Printf("document %s finished: %s\n", d.GetId(), d.GetStatus())
	if msg := d.GetErrorMessage(); msg != "" {
		fmt.Printf("  error: %s\n", msg)
	}
	for name, path := range d.GetArtifacts() {
		fmt.Printf("  artifact %s: %s\n", name, path)
	}
	for name, score := range d.GetScores() {
		fmt.Printf("  score %s: %.2f\n", name, score)
	}
	for _, is := range d.GetIssues() {
		fmt.Printf("  issue [%s] %s: %s\n", is.GetSeverity(), is.GetCode(), is.GetMessage())
	}
	for _, j := range jobs {
		fmt.Printf("  job %s: %s (attempts %d/%d)\n", j.GetStep(), j.GetStatus(), j.GetAttempts(), j.GetMaxAttempts())
	}
}
