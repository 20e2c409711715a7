// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlnoga/goldenedge/internal"
	"github.com/mlnoga/goldenedge/internal/ops"
	"github.com/mlnoga/goldenedge/internal/ops/edge"
)

// Maximum number of frames processed concurrently per request. Zero means GOMAXPROCS
var MaxThreads = 0

// Creates the API router
func NewRouter() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/sobel", postSobel)
			v1.POST("/stats", postStats)
		}
	}
	return r
}

// Listens and serves the API on the given address, e.g. ":8080"
func Serve(addr string) error {
	return NewRouter().Run(addr)
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func printArgs(logWriter io.Writer, prefix, suffix string, args interface{}) error {
	m, err := json.MarshalIndent(args, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(logWriter, "%s%s%s", prefix, string(m), suffix)
	return nil
}

type postSobelArgs struct {
	FilePatterns []string           `json:"filePatterns"`
	Sobel        *edge.OpSobel      `json:"sobel"`
	SaveGolden   *edge.OpSaveGolden `json:"saveGolden"`
	Save         *ops.OpSave        `json:"save"`
}

func postSobel(c *gin.Context) {
	var args postSobelArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if args.Sobel == nil {
		args.Sobel = edge.NewOpSobelDefault()
	}
	if args.SaveGolden == nil {
		args.SaveGolden = edge.NewOpSaveGoldenDefault()
	}
	if args.Save == nil {
		args.Save = ops.NewOpSaveDefault()
	}
	run(c, args, ops.NewOpSequence(loadMany(args.FilePatterns), args.Sobel, args.SaveGolden, args.Save))
}

type postStatsArgs struct {
	FilePatterns []string `json:"filePatterns"`
}

func postStats(c *gin.Context) {
	var args postStatsArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	run(c, args, ops.NewOpSequence(loadMany(args.FilePatterns), edge.NewOpStats()))
}

// Loads files from the working directory tree only
func loadMany(filePatterns []string) *ops.OpLoadMany {
	op := ops.NewOpLoadMany(filePatterns)
	op.Restrict = true
	return op
}

// Runs the operator and streams its log as plain text
func run(c *gin.Context, args interface{}, op ops.Operator) {
	header := c.Writer.Header()
	header.Set("Content-Type", "text/plain")
	c.Writer.WriteHeader(http.StatusOK)
	logWriter := internal.SyncWriter(c.Writer)

	if err := printArgs(logWriter, "Arguments:\n", "\n", args); err != nil {
		fmt.Fprintf(logWriter, "Error printing arguments: %s\n", err.Error())
		return
	}

	ctx := ops.NewContext(logWriter, MaxThreads)
	promises, err := op.MakePromises(nil, ctx)
	if err == nil {
		_, err = ops.MaterializeAll(promises, ctx.MaxThreads, true)
	}
	if err != nil {
		fmt.Fprintf(logWriter, "Error: %s\n", err.Error())
	}
	c.Writer.Flush()
}
