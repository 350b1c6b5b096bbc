// Package main provides the arrayops diagnostics CLI: it reports which SIMD
// dispatch the kernels selected on this machine and offers a quick benchmark
// against a naive scalar loop and the vek library.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/viterin/vek"

	"github.com/aslang-project/go-arrayops/lane"
	"github.com/aslang-project/go-arrayops/vec"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arrayops",
		Short: "Diagnostics for the go-arrayops SIMD kernels",
	}
	rootCmd.AddCommand(infoCmd(), benchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD dispatch level and lane geometry",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dispatch level:   %s\n", lane.CurrentName())
			fmt.Printf("register width:   %d bytes\n", lane.Width())
			fmt.Printf("float64 per lane: %d\n", lane.Count())
			fmt.Printf("scalar override:  %v (ARRAYOPS_NO_SIMD)\n", lane.NoSimdEnv())

			info := vek.Info()
			fmt.Printf("vek acceleration: %v (features: %v)\n",
				info.Acceleration, info.CPUFeatures)
		},
	}
}

func benchCmd() *cobra.Command {
	var size int
	var rounds int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the kernels against a scalar loop and the vek library",
		Run: func(cmd *cobra.Command, args []string) {
			runBench(size, rounds)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 1<<16, "vector length")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 200, "iterations per measurement")
	return cmd
}

func runBench(n, rounds int) {
	rng := rand.New(rand.NewSource(1))
	a := make([]float64, n)
	b := make([]float64, n)
	dst := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = rng.Float64()*2 - 1
		b[i] = rng.Float64()*2 - 1
	}

	fmt.Printf("n=%d, %d rounds, dispatch=%s\n\n", n, rounds, lane.CurrentLevel())

	measure("add (kernel)", rounds, func() {
		_ = vec.Add(a, b, dst)
	})
	measure("add (scalar)", rounds, func() {
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	})
	measure("add (vek)", rounds, func() {
		vek.Add_Into(dst, a, b)
	})

	measure("mul (kernel)", rounds, func() {
		_ = vec.Mul(a, b, dst)
	})
	measure("mul (scalar)", rounds, func() {
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	})
	measure("mul (vek)", rounds, func() {
		vek.Mul_Into(dst, a, b)
	})

	measure("dot (kernel)", rounds, func() {
		_, _ = vec.Dot(a, b)
	})
	measure("dot (scalar)", rounds, func() {
		var sum float64
		for i := range a {
			sum += a[i] * b[i]
		}
		_ = sum
	})
	measure("dot (vek)", rounds, func() {
		_ = vek.Dot(a, b)
	})
}

func measure(name string, rounds int, fn func()) {
	start := time.Now()
	for i := 0; i < rounds; i++ {
		fn()
	}
	per := time.Since(start) / time.Duration(rounds)
	fmt.Printf("%-14s %12v/op\n", name, per)
}
