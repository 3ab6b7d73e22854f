// Code generated by ent, DO NOT EDIT.

package logicrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLTE(FieldID, id))
}

// FromLogicID applies equality check predicate on the "from_logic_id" field. It's identical to FromLogicIDEQ.
func FromLogicID(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldFromLogicID, v))
}

// ToLogicID applies equality check predicate on the "to_logic_id" field. It's identical to ToLogicIDEQ.
func ToLogicID(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldToLogicID, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// FromLogicIDEQ applies the EQ predicate on the "from_logic_id" field.
func FromLogicIDEQ(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldFromLogicID, v))
}

// FromLogicIDNEQ applies the NEQ predicate on the "from_logic_id" field.
func FromLogicIDNEQ(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldFromLogicID, v))
}

// FromLogicIDIn applies the In predicate on the "from_logic_id" field.
func FromLogicIDIn(vs ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldFromLogicID, vs...))
}

// FromLogicIDNotIn applies the NotIn predicate on the "from_logic_id" field.
func FromLogicIDNotIn(vs ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldFromLogicID, vs...))
}

// ToLogicIDEQ applies the EQ predicate on the "to_logic_id" field.
func ToLogicIDEQ(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldToLogicID, v))
}

// ToLogicIDNEQ applies the NEQ predicate on the "to_logic_id" field.
func ToLogicIDNEQ(v int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldToLogicID, v))
}

// ToLogicIDIn applies the In predicate on the "to_logic_id" field.
func ToLogicIDIn(vs ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldToLogicID, vs...))
}

// ToLogicIDNotIn applies the NotIn predicate on the "to_logic_id" field.
func ToLogicIDNotIn(vs ...int) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldToLogicID, vs...))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v RelationType) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v RelationType) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...RelationType) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...RelationType) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldRelationType, vs...))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LogicRelation {
	return predicate.LogicRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFromLogic applies the HasEdge predicate on the "from_logic" edge.
func HasFromLogic() predicate.LogicRelation {
	return predicate.LogicRelation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FromLogicTable, FromLogicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFromLogicWith applies the HasEdge predicate on the "from_logic" edge with a given conditions (other predicates).
func HasFromLogicWith(preds ...predicate.Logic) predicate.LogicRelation {
	return predicate.LogicRelation(func(s *sql.Selector) {
		step := newFromLogicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToLogic applies the HasEdge predicate on the "to_logic" edge.
func HasToLogic() predicate.LogicRelation {
	return predicate.LogicRelation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ToLogicTable, ToLogicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToLogicWith applies the HasEdge predicate on the "to_logic" edge with a given conditions (other predicates).
func HasToLogicWith(preds ...predicate.Logic) predicate.LogicRelation {
	return predicate.LogicRelation(func(s *sql.Selector) {
		step := newToLogicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogicRelation) predicate.LogicRelation {
	return predicate.LogicRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogicRelation) predicate.LogicRelation {
	return predicate.LogicRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogicRelation) predicate.LogicRelation {
	return predicate.LogicRelation(sql.NotPredicates(p))
}
