package sfs

// Correction coefficients shared by the neutrality tests, all functions
// of the haploid sample size n. Notation follows Tajima (1989) and
// Fu & Li (1993).

// harmonic returns a1(n) = sum_{i=1}^{n-1} 1/i.
func harmonic(n int) float64 {
	var sum float64
	for i := 1; i < n; i++ {
		sum += 1 / float64(i)
	}
	return sum
}

// harmonicSq returns a2(n) = sum_{i=1}^{n-1} 1/i^2.
func harmonicSq(n int) float64 {
	var sum float64
	for i := 1; i < n; i++ {
		sum += 1 / float64(i*i)
	}
	return sum
}

func tajimaB1(n int) float64 {
	return float64(n+1) / float64(3*(n-1))
}

func tajimaB2(n int) float64 {
	return float64(2*(n*n+n+3)) / float64(9*n*(n-1))
}

func tajimaC1(n int) float64 {
	return tajimaB1(n) - 1/harmonic(n)
}

func tajimaC2(n int) float64 {
	a1 := harmonic(n)
	return tajimaB2(n) - float64(n+2)/(a1*float64(n)) + harmonicSq(n)/(a1*a1)
}

func tajimaE1(n int) float64 {
	return tajimaC1(n) / harmonic(n)
}

func tajimaE2(n int) float64 {
	a1 := harmonic(n)
	return tajimaC2(n) / (a1*a1 + harmonicSq(n))
}

// fuliC returns Fu & Li's c_n constant, with the n=2 special case.
func fuliC(n int) float64 {
	if n == 2 {
		return 1
	}
	return 2 * (float64(n)*harmonic(n) - 2*float64(n-1)) / float64((n-1)*(n-2))
}

// fuliNu and fuliU are the variance coefficients of Fu & Li's D.
func fuliNu(n int) float64 {
	a1 := harmonic(n)
	a2 := harmonicSq(n)
	return 1 + a1*a1/(a2+a1*a1)*(fuliC(n)-float64(n+1)/float64(n-1))
}

func fuliU(n int) float64 {
	return harmonic(n) - 1 - fuliNu(n)
}

// choose2 returns n*(n-1)/2, the number of sample pairs.
func choose2(n int) float64 {
	return float64(n*(n-1)) / 2
}
