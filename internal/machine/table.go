package machine

type transKey struct {
	state State
	read  Symbol
}

// program is the fixed palindrome decider. It is keyed by (state, symbol)
// so "is this pair defined" is a single lookup. The verdict-write states
// accept any symbol, which keeps the table total for every input over
// {a, b}: a mismatched symbol can sit one cell right of the reject sweep
// boundary when the last unmatched region has length one.
var program = map[transKey]Rule{
	// q0: read and blank the leftmost unmatched symbol.
	{StateScan, SymbolA}: {Blank, MoveRight, StateSweepA},
	{StateScan, SymbolB}: {Blank, MoveRight, StateSweepB},
	{StateScan, Blank}:   {Blank, MoveLeft, StateAccept},

	// q1/q2: carry the remembered symbol right to the first blank.
	{StateSweepA, SymbolA}: {SymbolA, MoveRight, StateSweepA},
	{StateSweepA, SymbolB}: {SymbolB, MoveRight, StateSweepA},
	{StateSweepA, Blank}:   {Blank, MoveLeft, StateMatchA},

	{StateSweepB, SymbolA}: {SymbolA, MoveRight, StateSweepB},
	{StateSweepB, SymbolB}: {SymbolB, MoveRight, StateSweepB},
	{StateSweepB, Blank}:   {Blank, MoveLeft, StateMatchB},

	// q3/q4: compare the rightmost unmatched symbol. Blank here means the
	// region emptied out (odd middle already consumed), which accepts.
	{StateMatchA, SymbolA}: {Blank, MoveLeft, StateRewind},
	{StateMatchA, SymbolB}: {SymbolB, MoveLeft, StateReject},
	{StateMatchA, Blank}:   {Blank, MoveLeft, StateAccept},

	{StateMatchB, SymbolB}: {Blank, MoveLeft, StateRewind},
	{StateMatchB, SymbolA}: {SymbolA, MoveLeft, StateReject},
	{StateMatchB, Blank}:   {Blank, MoveLeft, StateAccept},

	// q5: return to the blank left of the unmatched region.
	{StateRewind, SymbolA}: {SymbolA, MoveLeft, StateRewind},
	{StateRewind, SymbolB}: {SymbolB, MoveLeft, StateRewind},
	{StateRewind, Blank}:   {Blank, MoveRight, StateScan},

	// q_yes / q_no: sweep left blanking leftovers, then write the marker.
	{StateAccept, SymbolA}: {Blank, MoveLeft, StateAccept},
	{StateAccept, SymbolB}: {Blank, MoveLeft, StateAccept},
	{StateAccept, Blank}:   {Blank, MoveRight, StateWriteY},

	{StateWriteY, SymbolA}: {'Y', MoveRight, StateWriteE},
	{StateWriteY, SymbolB}: {'Y', MoveRight, StateWriteE},
	{StateWriteY, Blank}:   {'Y', MoveRight, StateWriteE},

	{StateWriteE, SymbolA}: {'E', MoveRight, StateWriteS},
	{StateWriteE, SymbolB}: {'E', MoveRight, StateWriteS},
	{StateWriteE, Blank}:   {'E', MoveRight, StateWriteS},

	{StateWriteS, SymbolA}: {'S', MoveStay, StateHalt},
	{StateWriteS, SymbolB}: {'S', MoveStay, StateHalt},
	{StateWriteS, Blank}:   {'S', MoveStay, StateHalt},

	{StateReject, SymbolA}: {Blank, MoveLeft, StateReject},
	{StateReject, SymbolB}: {Blank, MoveLeft, StateReject},
	{StateReject, Blank}:   {Blank, MoveRight, StateWriteN},

	{StateWriteN, SymbolA}: {'N', MoveRight, StateWriteO},
	{StateWriteN, SymbolB}: {'N', MoveRight, StateWriteO},
	{StateWriteN, Blank}:   {'N', MoveRight, StateWriteO},

	{StateWriteO, SymbolA}: {'O', MoveStay, StateHalt},
	{StateWriteO, SymbolB}: {'O', MoveStay, StateHalt},
	{StateWriteO, Blank}:   {'O', MoveStay, StateHalt},
}
