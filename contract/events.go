package contract

import (
	"math/big"

	"go.uber.org/zap"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/codec"
)

// buildEvents reconstructs high-level events from the raw record stream.
// Records whose first key is not a registered selector are low-level events
// and are skipped. A record that carries a registered selector but whose
// remaining words do not decode against the event's declared argument types
// is dropped: a low-level event may contain a selector-looking value by
// accident, and one bad record must not abort reconstruction of the rest.
func (inv *Invocation) buildEvents(raw []cairolang.RawEvent) []*abi.EventValue {
	var events []*abi.EventValue
	for _, record := range raw {
		if len(record.Keys) == 0 || !inv.contract.events.HasSelector(record.Keys[0]) {
			continue
		}

		def, err := inv.contract.events.BySelector(record.Keys[0])
		if err != nil {
			continue
		}

		argWords := make([]*big.Int, 0, len(record.Keys)-1+len(record.Data))
		argWords = append(argWords, record.Keys[1:]...)
		argWords = append(argWords, record.Data...)

		types := make([]*abi.Type, len(def.Args))
		for i, a := range def.Args {
			types[i] = a.Type
		}

		values, err := codec.Unflatten(inv.contract.structs, argWords, types)
		if err != nil {
			Logger().Debug("dropping event record: selector matched but arguments did not decode",
				zap.String("event", def.Name), zap.Error(err))
			continue
		}

		ev, err := def.New(values...)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events
}
