/*package pusher advances particle positions over one timestep under
relativistic kinematics. The kernels are pure scalar functions so they can
be scheduled per particle in any order.*/
package pusher

import (
	"math"

	"github.com/GivenChen/WarpX/lib/geom"
	"github.com/GivenChen/WarpX/lib/particles"
	"github.com/GivenChen/WarpX/lib/thread"
)

// UpdatePosition pushes a particle's position over one timestep, given the
// value of its proper velocity (ux, uy, uz). This uses the standard
// leapfrog update
//
//	x^{n+1} - x^n = dt * u^{n+1/2} / gamma^{n+1/2}
//
// c is the speed of light. Axes the mode leaves inactive are untouched.
func UpdatePosition[T particles.Real](
	x, y, z *T, ux, uy, uz T, dt, c float64, mode geom.Mode,
) {
	invC2 := 1 / (c * c)
	u2 := float64(ux)*float64(ux) + float64(uy)*float64(uy) + float64(uz)*float64(uz)
	invGamma := T(1 / math.Sqrt(1+u2*invC2))

	dtT := T(dt)
	if mode.ActiveX() {
		*x += ux * invGamma * dtT
	}
	if mode.ActiveY() {
		*y += uy * invGamma * dtT
	}
	*z += uz * invGamma * dtT
}

// UpdatePositionImplicit pushes a particle's position over one timestep
// using the Crank-Nicolson scheme
//
//	x^{n+1} - x^n = dt * (u^{n+1} + u^n) / (gamma^{n+1} + gamma^n)
//
// (uxn, uyn, uzn) is the proper velocity at the start of the step and
// (ux, uy, uz) its value at the step midpoint; the end-of-step velocity is
// recovered as u^{n+1} = 2u - u^n. When the two inputs are equal this
// reduces to the explicit update.
func UpdatePositionImplicit[T particles.Real](
	x, y, z *T, uxn, uyn, uzn, ux, uy, uz T, dt, c float64, mode geom.Mode,
) {
	invC2 := 1 / (c * c)

	uxnp1 := 2*float64(ux) - float64(uxn)
	uynp1 := 2*float64(uy) - float64(uyn)
	uznp1 := 2*float64(uz) - float64(uzn)

	un2 := float64(uxn)*float64(uxn) + float64(uyn)*float64(uyn) + float64(uzn)*float64(uzn)
	unp12 := uxnp1*uxnp1 + uynp1*uynp1 + uznp1*uznp1
	gammaN := math.Sqrt(1 + un2*invC2)
	gammaNp1 := math.Sqrt(1 + unp12*invC2)
	invGamma := T(2 / (gammaN + gammaNp1))

	dtT := T(dt)
	if mode.ActiveX() {
		*x += ux * invGamma * dtT
	}
	if mode.ActiveY() {
		*y += uy * invGamma * dtT
	}
	*z += uz * invGamma * dtT
}

// PushTile applies the explicit position update to every particle in the
// tile, one logical task per particle with no cross-particle state.
func PushTile[T particles.Real](
	tile *particles.Tile[T], dt, c float64, mode geom.Mode, pool *thread.Pool,
) {
	x, y, z := tile.X(), tile.Y(), tile.Z()
	ux, uy, uz := tile.UX(), tile.UY(), tile.UZ()
	pool.Run(tile.Len(), func(start, end, _ int) {
		for i := start; i < end; i++ {
			UpdatePosition(&x[i], &y[i], &z[i], ux[i], uy[i], uz[i], dt, c, mode)
		}
	})
}
