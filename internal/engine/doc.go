// Package engine computes mechanical sag, tension, and ground-clearance
// margins for a single overhead conductor span under bare and combined
// ice/wind loading, and checks the result against the NESC Rule 232-C
// ground-clearance requirement.
//
// # Units
//
// The engine works in fixed imperial units throughout; there is no unit
// conversion layer:
//
//	lengths (span, height, sag, clearance)  feet
//	conductor diameter, ice thickness       inches
//	weights and loads                       pounds per foot
//	tensions and breaking strength          pounds
//	wind speed                              miles per hour
//	wind pressure                           pounds per square foot
//	voltage                                 kilovolts (phase-to-phase class)
//
// # Calculation pipeline
//
// Compute evaluates a strict, feed-forward sequence of closed-form formulas;
// every quantity is computed exactly once, strictly downstream of its inputs,
// with no iteration and no feedback:
//
//	 1. initial tension        Ti = 0.35·RBS
//	 2. initial sag            Si = Wc·l² / (8·Ti)
//	 3. final tension          Tf = 0.25·RBS
//	 4. final sag              Sf = Wc·l² / (8·Tf)
//	 5. exposure coefficient   Kz = 2.01·(Zh/Zg)^(2/α)
//	 6. gust effect factor     E  = 4.9·√(k·(33/Zh)^(1/αFM))
//	                           Bw = 1 / (1 + 0.8·S/LS)
//	                           Gw solved from the closure Gw·Kv = 1.43
//	 7. wind pressure          F  = Q·Kz·Kzt·VI²·Gw·Cf
//	 8. design ice thickness   Iz = I·(Zh/33)^0.10
//	 9. ice load               Wi = 1.24·(d + Iz)·Iz
//	10. iced diameter          di = 2·I + d
//	11. wind load              Ww = F·di
//	12. effective load         Wt = √((Wc+Wi)² + Ww²)
//	13. deflected sag          Sdef = Wt·l² / (8·0.8·RBS)
//	14. vertical sag           Sver = Sdef·(Wc+Wi)/Wt
//	15. total sag              Stot = Sf + Sver
//	16. final clearance        C    = Zh − Stot
//	17. NESC Rule 232-C        Vpg  = 1.1·kV/√3
//	                           Creq = max(0, (Vpg−22)·0.4)/12 + 18.5
//
// The step-6 closure is algebraic, not iterative: with E and Bw known,
// Gw·Kv = 1.43 and Gw·Kv² = 1 + 2.7·E·√Bw pin Gw to a single positive real,
// Gw = 1.43² / (1 + 2.7·E·√Bw).
//
// Total sag sums the final (no-load) sag with the vertical component of the
// deflected sag and never includes the initial sag. That is the governing
// condition as defined; do not "fix" it.
//
// # Degenerate inputs
//
// Ice thickness zero and wind speed zero need no special casing: the algebra
// collapses on its own (Wi = 0, Ww = 0, Wt = Wc, total sag = final sag). Tests
// pin these degenerations.
//
// # Errors
//
// Inputs are validated in full before any arithmetic runs; a failed
// validation returns a *ValidationError listing every violated field and no
// partial result. After validation the pipeline cannot fail except on a
// floating-point domain violation (a negative radicand or non-finite
// intermediate reached by bypassing validation), which returns a
// *DomainError rather than letting a NaN escape.
//
// The engine performs no I/O, holds no mutable state, and is safe for
// concurrent use.
package engine
