// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

// dump the tree into the test log
func logTree(t *testing.T, tree *avl.Tree) {
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, true)
	t.Logf("tree:\n%s", buffer.String())
	t.Logf("depth: %d", depth)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"3630"}, {"1427"}, {"5843"}, {"9549"}, {"5433"},
		{"1274"}, {"9034"}, {"4724"}, {"6179"}, {"5072"},
		{"9272"}, {"4030"}, {"4205"}, {"3363"}, {"8582"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
		{"2791"}, {"1504"}, {"3469"}, {"9701"}, {"5077"},
		{"7928"}, {"7978"}, {"5383"}, {"4319"}, {"8197"},
		{"9227"}, {"1166"}, {"4216"}, {"0866"}, {"1791"},
		{"5395"}, {"4310"}, {"4452"}, {"6140"}, {"1494"},
		{"8859"}, {"3394"}, {"5507"}, {"7295"}, {"5408"},
		{"7789"}, {"8237"}, {"6990"}, {"6882"}, {"8243"},
		{"8894"}, {"4352"}, {"6727"}, {"7019"}, {"3126"},
		{"3102"}, {"2948"}, {"8242"}, {"5027"}, {"8892"},
		{"3492"}, {"1323"}, {"1101"}, {"4526"}, {"5177"},
		{"6175"}, {"6664"}, {"2742"}, {"6094"}, {"9877"},
		{"2534"}, {"2105"}, {"6588"}, {"9982"}, {"3696"},
		{"3480"}, {"2244"}, {"7487"}, {"2844"}, {"3199"},
		{"5829"}, {"6952"}, {"6915"}, {"0905"}, {"7615"},
	}

	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
		}

		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			logTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key, "data:"+key.String())
	}

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// the callback walk visits the same keys in the same order
	i := 0
	tree.Each(func(key avl.Item, value interface{}) bool {
		if key.(stringItem).s != expected[i] {
			t.Fatalf("each item: actual: %q  expected: %q", key, expected[i])
		}
		i += 1
		return true
	})
	if i != len(expected) {
		t.Fatalf("each count: actual: %d  expected: %d", i, len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(stringItem{key})
	}

	if !tree.IsEmpty() {
		logTree(t, tree)
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use find to fetch each item
func doFind(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		value, err := tree.Find(stringItem{key})
		if nil != err {
			t.Fatalf("[%d] key: %q  find error: %s", index, key, err)
		}
		if value != "data:"+key {
			t.Fatalf("[%d]: find: %q  actual: %q", index, key, value)
		}
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Remove(stringItem{key})
		}
	}

	for index, key := range expected {
		_, err := tree.Find(stringItem{key})
		if 0 == index%2 {
			if !fault.IsErrNotFound(err) {
				t.Fatalf("[%d]: deleted key: %q  error: %v", index, key, err)
			}
		} else if nil != err {
			t.Fatalf("[%d]: kept key: %q  error: %s", index, key, err)
		}
	}
	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key.String())
	}

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Remove(key)
		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("inconsistent tree: %s", err)
		}
	}

	// add back the test value
	testKey := stringItem{"500"}
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, d)
	doFind(t, d)

	// check that test value is searchable
	tv := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, err := tree.Delete(testKey)
	if nil != err {
		t.Fatalf("delete test key error: %s", err)
	}
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv = tree.Search(testKey)
	if nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
}

// check that inserted nodes can be overwritten
// and that nodes keep their identity when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"}, {"08"}, {"09"}, {"10"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	// overwrite a key
	oKey := stringItem{"05"}
	const newData = "new content for 05"
	if tree.Insert(oKey, newData) {
		t.Fatal("overwrite added a node")
	}
	if len(addList) != tree.Count() {
		t.Fatalf("count after overwrite: %d  expected: %d", tree.Count(), len(addList))
	}

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}

	// check overwrite
	node1 := tree.Search(oKey)
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// delete nodes so the oKey node moves
	tree.Remove(stringItem{"06"})
	tree.Remove(stringItem{"04"})

	// ensure node kept its identity
	node2 := tree.Search(oKey)
	if *node1 != *node2 {
		t.Fatalf("node moved from: %v → %v", node1, node2)
	}
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}
	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}
