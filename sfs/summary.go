package sfs

// BigSummary flattens the spectrum into a single feature vector for
// ABC-style downstream inference. The recorded length is overwritten
// with the current total first. The layout is deterministic:
//
//	[ L,
//	  theta_pi, theta_w, theta_zeta, tajima_D, fuli_D, d_xy   (pop 0),
//	  ...                                                     (pop 1..),
//	  f_st (weighted)                                (pairs, index order),
//	  D_xy                                  (pairs, only with includeDxy) ]
//
// so the length is 1 + 6*npops + C(npops,2)*(1 or 2).
func (s *Spectrum) BigSummary(persite, includeDxy bool) ([]float64, error) {
	s.AssumeLength()
	npops := s.NumPops()
	out := []float64{s.length}

	for p := 0; p < npops; p++ {
		m, err := s.Marginalize(p)
		if err != nil {
			return nil, err
		}
		tp, err := m.ThetaPi(persite, false)
		if err != nil {
			return nil, err
		}
		tw, err := m.ThetaW(persite)
		if err != nil {
			return nil, err
		}
		zeta, err := m.ThetaZeta(persite)
		if err != nil {
			return nil, err
		}
		td, err := m.TajimaD()
		if err != nil {
			return nil, err
		}
		fd, err := m.FuLiD()
		if err != nil {
			return nil, err
		}
		dxy, err := m.DXY(persite)
		if err != nil {
			return nil, err
		}
		out = append(out, tp, tw, zeta, td, fd, dxy)
	}

	for p1 := 0; p1 < npops; p1++ {
		for p2 := p1 + 1; p2 < npops; p2++ {
			m, err := s.Marginalize(p1, p2)
			if err != nil {
				return nil, err
			}
			fst, err := m.Fst(true)
			if err != nil {
				return nil, err
			}
			out = append(out, fst)
		}
	}

	if includeDxy {
		for p1 := 0; p1 < npops; p1++ {
			for p2 := p1 + 1; p2 < npops; p2++ {
				m, err := s.Marginalize(p1, p2)
				if err != nil {
					return nil, err
				}
				dxy, err := m.BigDXY(persite)
				if err != nil {
					return nil, err
				}
				out = append(out, dxy)
			}
		}
	}

	return out, nil
}
