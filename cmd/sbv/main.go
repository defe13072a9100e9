// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sbv exercises the succinct bit-vector and wavelet-matrix library
// from the shell: build a structure from a list of positions or symbols and
// run rank/select/quantile queries against it.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Geek0x0/succinct"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sbv",
		Short: "succinct bit vector and wavelet matrix inspector",
	}

	rootCmd.AddCommand(
		newDenseCmd(),
		newSparseCmd(),
		newRLECmd(),
		newWaveletCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func newDenseCmd() *cobra.Command {
	var universe int
	var positions string
	var rankIdx int
	var selectN int

	cmd := &cobra.Command{
		Use:   "dense",
		Short: "build a DenseBitVec and report rank1/select1",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseInts(positions)
			if err != nil {
				return err
			}
			builder, err := succinct.NewDenseBitVecBuilder(universe)
			if err != nil {
				return err
			}
			for _, p := range pos {
				if err := builder.One(p); err != nil {
					return err
				}
			}
			bv, err := builder.Build()
			if err != nil {
				return err
			}
			fmt.Printf("universeSize=%d numOnes=%d numZeros=%d\n", bv.UniverseSize(), bv.NumOnes(), bv.NumZeros())
			fmt.Printf("rank1(%d) = %d\n", rankIdx, bv.Rank1(rankIdx))
			if v, err := bv.Select1(selectN); err != nil {
				fmt.Printf("select1(%d) = error: %v\n", selectN, err)
			} else {
				fmt.Printf("select1(%d) = %d\n", selectN, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&universe, "universe", 0, "universe size")
	cmd.Flags().StringVar(&positions, "positions", "", "comma-separated 1-bit positions")
	cmd.Flags().IntVar(&rankIdx, "rank", 0, "index to query rank1 at")
	cmd.Flags().IntVar(&selectN, "select", 0, "n to query select1 at")
	return cmd
}

func newSparseCmd() *cobra.Command {
	var universe int
	var positions string
	var rankIdx int
	var selectN int

	cmd := &cobra.Command{
		Use:   "sparse",
		Short: "build a SparseBitVec (Elias-Fano) and report rank1/select1",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseInts(positions)
			if err != nil {
				return err
			}
			builder, err := succinct.NewSparseBitVecBuilder(universe)
			if err != nil {
				return err
			}
			for _, p := range pos {
				if err := builder.One(p); err != nil {
					return err
				}
			}
			bv, err := builder.Build()
			if err != nil {
				return err
			}
			fmt.Printf("universeSize=%d numOnes=%d numUniqueOnes=%d hasMultiplicity=%t\n",
				bv.UniverseSize(), bv.NumOnes(), bv.NumUniqueOnes(), bv.HasMultiplicity())
			fmt.Printf("rank1(%d) = %d\n", rankIdx, bv.Rank1(rankIdx))
			if v, err := bv.Select1(selectN); err != nil {
				fmt.Printf("select1(%d) = error: %v\n", selectN, err)
			} else {
				fmt.Printf("select1(%d) = %d\n", selectN, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&universe, "universe", 0, "universe size")
	cmd.Flags().StringVar(&positions, "positions", "", "comma-separated 1-bit positions, repeats allowed")
	cmd.Flags().IntVar(&rankIdx, "rank", 0, "index to query rank1 at")
	cmd.Flags().IntVar(&selectN, "select", 0, "n to query select1 at")
	return cmd
}

func newRLECmd() *cobra.Command {
	var runs string
	var rankIdx int

	cmd := &cobra.Command{
		Use:   "rle",
		Short: "build an RLEBitVec from z:o run pairs and report rank1",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := succinct.NewRLEBitVecBuilder()
			for _, pair := range strings.Split(runs, ",") {
				pair = strings.TrimSpace(pair)
				if pair == "" {
					continue
				}
				parts := strings.SplitN(pair, ":", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid run %q: want z:o", pair)
				}
				z, err := strconv.Atoi(parts[0])
				if err != nil {
					return fmt.Errorf("invalid zeros in %q: %w", pair, err)
				}
				o, err := strconv.Atoi(parts[1])
				if err != nil {
					return fmt.Errorf("invalid ones in %q: %w", pair, err)
				}
				if err := builder.Run(z, o); err != nil {
					return err
				}
			}
			bv, err := builder.Build()
			if err != nil {
				return err
			}
			fmt.Printf("universeSize=%d numOnes=%d numZeros=%d\n", bv.UniverseSize(), bv.NumOnes(), bv.NumZeros())
			fmt.Printf("rank1(%d) = %d\n", rankIdx, bv.Rank1(rankIdx))
			return nil
		},
	}
	cmd.Flags().StringVar(&runs, "runs", "", "comma-separated zeros:ones run pairs, e.g. 3:2,0:4")
	cmd.Flags().IntVar(&rankIdx, "rank", 0, "index to query rank1 at")
	return cmd
}

func newWaveletCmd() *cobra.Command {
	var symbols string
	var maxSymbol int
	var countSym int
	var quantileK int

	cmd := &cobra.Command{
		Use:   "wavelet",
		Short: "build a WaveletMatrix and report count/quantile over the full range",
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := parseInts(symbols)
			if err != nil {
				return err
			}
			builder := succinct.NewWaveletMatrixBuilder(uint32(maxSymbol))
			for _, s := range syms {
				if err := builder.Push(uint32(s)); err != nil {
					return err
				}
			}
			wm, err := builder.Build()
			if err != nil {
				return err
			}
			fmt.Printf("length=%d numLevels=%d maxSymbol=%d\n", wm.Len(), wm.NumLevels(), wm.MaxSymbol())
			fmt.Printf("count(%d, [0,%d)) = %d\n", countSym, wm.Len(), wm.Count(uint32(countSym), 0, wm.Len()))
			sym, cnt := wm.Quantile(quantileK, 0, wm.Len())
			fmt.Printf("quantile(%d, [0,%d)) = %d (count %d)\n", quantileK, wm.Len(), sym, cnt)
			if sym, ok := wm.SimpleMajority(0, wm.Len()); ok {
				fmt.Printf("simpleMajority = %d\n", sym)
			} else {
				fmt.Println("simpleMajority = none")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbol sequence")
	cmd.Flags().IntVar(&maxSymbol, "max-symbol", 0, "maximum symbol value in the alphabet")
	cmd.Flags().IntVar(&countSym, "count", 0, "symbol to count over the full range")
	cmd.Flags().IntVar(&quantileK, "quantile", 0, "0-indexed rank to query with quantile")
	return cmd
}
