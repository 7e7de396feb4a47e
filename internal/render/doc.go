// Package render invokes the Graphviz layout engines as subprocesses to turn
// DOT text into image bytes. The subprocess boundary is isolated behind a
// small runner interface so the pipeline is testable without Graphviz
// installed.
package render
