package chem_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/acidbase/internal/chem"
)

// logGrid returns n log-spaced values in [lo, hi].
func logGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	a, b := math.Log10(lo), math.Log10(hi)
	for i := range out {
		out[i] = math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
	}
	return out
}

var _ = Describe("Equilibrium", func() {
	concentrations := logGrid(chem.MinConcentration, chem.MaxConcentration, 25)
	strengths := logGrid(chem.MinWeakStrength, chem.MaxWeakStrength, 25)

	Describe("weak acid", func() {
		It("solves the quadratic for every valid c and Ka", func() {
			for _, c := range concentrations {
				for _, ka := range strengths {
					x := chem.Compute(chem.WeakAcid, c, ka).Hydronium
					Expect(x*x+ka*x-ka*c).To(BeNumerically("~", 0, 1e-9), "c=%g ka=%g", c, ka)
				}
			}
		})

		It("conserves mass", func() {
			for _, c := range concentrations {
				for _, ka := range strengths {
					v := chem.Compute(chem.WeakAcid, c, ka)
					Expect(v.Solute+v.Product).To(BeNumerically("~", c, 1e-9))
				}
			}
		})

		It("never reports a negative concentration", func() {
			for _, c := range concentrations {
				for _, ka := range strengths {
					v := chem.Compute(chem.WeakAcid, c, ka)
					Expect(v.Hydronium).To(BeNumerically(">", 0))
					Expect(v.Solute).To(BeNumerically(">=", -1e-12))
				}
			}
		})
	})

	Describe("monotonicity", func() {
		DescribeTable("hydronium never decreases as concentration grows",
			func(kind chem.Kind) {
				for _, k := range []float64{1e-10, 1e-5, 1, 100} {
					prev := 0.0
					for _, c := range concentrations {
						h := chem.Compute(kind, c, k).Hydronium
						Expect(h).To(BeNumerically(">=", prev))
						prev = h
					}
				}
			},
			Entry("strong acid", chem.StrongAcid),
			Entry("weak acid", chem.WeakAcid),
		)

		It("hydronium never decreases as Ka grows", func() {
			for _, c := range concentrations {
				prev := 0.0
				for _, ka := range strengths {
					h := chem.Compute(chem.WeakAcid, c, ka).Hydronium
					Expect(h).To(BeNumerically(">=", prev))
					prev = h
				}
			}
		})

		It("hydroxide never decreases as Kb grows", func() {
			for _, c := range concentrations {
				prev := 0.0
				for _, kb := range strengths {
					oh := chem.Compute(chem.WeakBase, c, kb).Hydroxide
					Expect(oh).To(BeNumerically(">=", prev))
					prev = oh
				}
			}
		})
	})

	Describe("pH", func() {
		It("stays inside [0, 14] across the input domain", func() {
			for _, kind := range chem.Kinds() {
				for _, c := range concentrations {
					for _, k := range strengths {
						sol := chem.Solution{Kind: kind, Concentration: c, Strength: k}
						if !kind.IsWeak() {
							sol.Strength = chem.StrongStrength
						}
						Expect(sol.PH()).To(And(
							BeNumerically(">=", 0),
							BeNumerically("<=", 14),
						), "%v", sol)
					}
				}
			}
		})

		It("reads 0.3 for a 0.5 M strong acid", func() {
			sol := chem.Solution{Kind: chem.StrongAcid, Concentration: 0.5, Strength: chem.StrongStrength}
			Expect(sol.Concentrations().Hydronium).To(Equal(0.5))
			Expect(sol.PH()).To(Equal(0.3))
		})
	})
})
