package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/codec"
	"github.com/dewi-tim/cairo-lang/contract"
	"github.com/dewi-tim/cairo-lang/execution"
)

func main() {
	var (
		abiFile     = flag.String("abi", "", "Path to contract ABI JSON file")
		funcName    = flag.String("func", "", "Function to encode calldata for")
		argsJSON    = flag.String("args", "", `Arguments as JSON object ({"account": 1, "values": [1, 2]})`)
		retdata     = flag.String("retdata", "", "Return words to decode (comma-separated felts)")
		selName     = flag.String("selector", "", "Print the selector for a name and exit")
		list        = flag.Bool("list", false, "List functions, events and structs and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *selName != "" {
		fmt.Printf("0x%x\n", abi.Selector(*selName))
		return
	}

	if *abiFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: abi -abi <file.json> -func name -args '{...}'")
		fmt.Fprintln(os.Stderr, "       abi -abi <file.json> -list")
		fmt.Fprintln(os.Stderr, "       abi -abi <file.json> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       abi -selector <name>")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*abiFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*abiFile, *funcName, *argsJSON, *retdata, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(abiFile, funcName, argsJSON, retdataStr string, listOnly bool) error {
	data, err := os.ReadFile(abiFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	description, err := abi.Parse(data)
	if err != nil {
		return fmt.Errorf("parse ABI: %w", err)
	}

	// The inspection contract is bound to a throwaway state; nothing here
	// executes, the interface alone drives encoding.
	c, err := contract.New(execution.NewState(), description, big.NewInt(1))
	if err != nil {
		return fmt.Errorf("resolve interface: %w", err)
	}

	fmt.Printf("ABI: %s\n", abiFile)
	fmt.Printf("Functions: %d\n", len(c.FunctionNames()))
	fmt.Printf("Events: %d\n", len(c.Events().Names()))
	fmt.Printf("Structs: %d\n", len(c.Structs().Names()))

	fmt.Printf("\nDeclared functions:\n")
	for _, name := range c.FunctionNames() {
		fn, err := c.Function(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", formatSignature(fn))
	}

	if listOnly {
		fmt.Printf("\nDeclared events:\n")
		for _, name := range c.Events().Names() {
			sel, _ := c.Events().SelectorFor(name)
			fmt.Printf("  %s  selector=0x%x\n", name, sel)
		}
		fmt.Printf("\nDeclared structs:\n")
		for _, name := range c.Structs().Names() {
			def, err := c.Structs().Get(name)
			if err != nil {
				return err
			}
			var members []string
			for _, f := range def.Fields {
				members = append(members, f.Name+": "+f.Type.String())
			}
			fmt.Printf("  %s { %s }\n", name, strings.Join(members, ", "))
		}
		return nil
	}

	if funcName == "" {
		fmt.Printf("\nUse -func to encode calldata for a function.\n")
		return nil
	}

	fn, err := c.Function(funcName)
	if err != nil {
		return err
	}

	if retdataStr != "" {
		return decodeRetdata(c, fn, retdataStr)
	}

	args, err := parseArgsJSON(argsJSON)
	if err != nil {
		return err
	}
	inv, err := fn.Bind(args)
	if err != nil {
		return err
	}

	fmt.Printf("\nFunction: %s\n", formatSignature(fn))
	fmt.Printf("Selector: 0x%x\n", abi.Selector(funcName))
	fmt.Printf("Calldata (%d words):\n", len(inv.Calldata()))
	for _, w := range inv.Calldata() {
		fmt.Printf("  0x%x\n", w)
	}
	return nil
}

func decodeRetdata(c *contract.Contract, fn *contract.Function, retdataStr string) error {
	var words []*big.Int
	for _, field := range strings.Split(retdataStr, ",") {
		w, err := cairolang.FeltFromString(strings.TrimSpace(field))
		if err != nil {
			return err
		}
		words = append(words, w)
	}

	returns := fn.Returns()
	types := make([]*abi.Type, len(returns))
	for i, r := range returns {
		types[i] = r.Type
	}
	values, err := codec.Unflatten(c.Structs(), words, types)
	if err != nil {
		return err
	}

	fmt.Printf("Decoded return of %s:\n", fn.Name())
	for i, r := range returns {
		fmt.Printf("  %s = %v\n", r.Name, values[i])
	}
	return nil
}

// parseArgsJSON decodes an argument object, keeping numbers as json.Number so
// field elements survive without float truncation.
func parseArgsJSON(s string) (map[string]any, error) {
	if s == "" {
		return map[string]any{}, nil
	}
	iter := jsoniter.Config{UseNumber: true}.Froze()
	var raw map[string]any
	if err := iter.UnmarshalFromString(s, &raw); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	args := make(map[string]any, len(raw))
	for name, v := range raw {
		converted, err := convertValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		args[name] = converted
	}
	return args, nil
}

func convertValue(v any) (any, error) {
	switch v := v.(type) {
	case json.Number:
		f, err := cairolang.FeltFromString(v.String())
		if err != nil {
			return nil, err
		}
		return f, nil
	case string:
		return cairolang.FeltFromString(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			converted, err := convertValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported argument value %v", v)
	}
}

func formatSignature(fn *contract.Function) string {
	var params []string
	for _, p := range fn.Params() {
		params = append(params, p.Name+": "+p.Type.String())
	}
	var returns []string
	for _, r := range fn.Returns() {
		returns = append(returns, r.Name+": "+r.Type.String())
	}
	sig := fn.Name() + "(" + strings.Join(params, ", ") + ")"
	if len(returns) > 0 {
		sig += " -> (" + strings.Join(returns, ", ") + ")"
	}
	return sig
}
