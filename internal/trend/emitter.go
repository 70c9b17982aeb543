package trend

// Emit routes a scaled average to the rising and falling series. The active
// series always receives the value; the inactive one receives it only on a
// transition tick so both polylines meet at the pivot.
func Emit(scaled int, dir Direction, transitioned bool) (rising, falling Point) {
	bridge := None
	if transitioned {
		bridge = Value(scaled)
	}
	if dir == Rising {
		return Value(scaled), bridge
	}
	return bridge, Value(scaled)
}
