package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenRequestID returns a base58 id suitable for log correlation headers.
func GenRequestID() string {
	return node.Generate().Base58()
}
