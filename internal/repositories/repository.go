package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Join struct {
	Table    string
	Alias    string
	OnLeft   string
	OnRight  string
	JoinType string
}

func (j *Join) EffectiveAlias() string {
	if j.Alias != "" {
		return j.Alias
	}
	return j.Table
}

func (j *Join) sqlIdentifier() string {
	alias := j.EffectiveAlias()
	if alias != j.Table {
		return fmt.Sprintf("%s AS %s", j.Table, alias)
	}
	return j.Table
}

// Params описывает листинг одной сущности. Колонки и разрешенные
// фильтры/сортировки задаются статически в каждом репозитории,
// схема БД в рантайме не опрашивается.
type Params struct {
	WithPg    bool
	Table     string
	Alias     string
	Columns   string
	Relations []Join
	Filter    map[string]interface{}
	Where     map[string]interface{}
	Sort      map[string]string
	Limit     uint64
	Offset    uint64
	Search    string

	AllowedFilterColumns []string
	AllowedSearchColumns []string
	AllowedSortColumns   []string
	DefaultOrder         string

	GroupRelatedFieldsByPrefix bool
}

func (p *Params) EffectiveBaseAlias() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Table
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if strings.EqualFold(val, item) {
			return true
		}
	}
	return false
}

func applyQueryConditions(builder sq.SelectBuilder, params Params) sq.SelectBuilder {
	for key, val := range params.Filter {
		if contains(params.AllowedFilterColumns, key) {
			builder = builder.Where(sq.Eq{key: val})
		}
	}

	for key, val := range params.Where {
		builder = builder.Where(sq.Eq{key: val})
	}

	if params.Search != "" && len(params.AllowedSearchColumns) > 0 {
		var conditions []sq.Sqlizer
		pattern := fmt.Sprintf("%%%s%%", params.Search)
		for _, col := range params.AllowedSearchColumns {
			conditions = append(conditions, sq.Expr(fmt.Sprintf("%s ILIKE ?", col), pattern))
		}
		builder = builder.Where(sq.Or(conditions))
	}

	for _, join := range params.Relations {
		onClause := fmt.Sprintf("%s = %s", join.OnLeft, join.OnRight)
		joinTarget := join.sqlIdentifier()
		switch strings.ToUpper(join.JoinType) {
		case "LEFT":
			builder = builder.LeftJoin(fmt.Sprintf("%s ON %s", joinTarget, onClause))
		case "RIGHT":
			builder = builder.RightJoin(fmt.Sprintf("%s ON %s", joinTarget, onClause))
		default:
			builder = builder.Join(fmt.Sprintf("%s ON %s", joinTarget, onClause))
		}
	}
	return builder
}

func applyOrder(builder sq.SelectBuilder, params Params) sq.SelectBuilder {
	ordered := false
	for col, dir := range params.Sort {
		if !contains(params.AllowedSortColumns, col) {
			continue
		}
		direction := "ASC"
		if strings.EqualFold(dir, "desc") {
			direction = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", col, direction))
		ordered = true
	}
	if !ordered && params.DefaultOrder != "" {
		builder = builder.OrderBy(params.DefaultOrder)
	}
	return builder
}

func groupRowData(
	values []interface{},
	fieldDescriptions []pgconn.FieldDescription,
	baseTableAlias string,
	relationAliases map[string]bool,
) map[string]interface{} {
	result := make(map[string]interface{})
	relationSubMaps := make(map[string]map[string]interface{})

	for relAlias := range relationAliases {
		relationSubMaps[relAlias] = make(map[string]interface{})
	}

	for i, fd := range fieldDescriptions {
		sqlColName := string(fd.Name)
		val := values[i]

		parts := strings.SplitN(sqlColName, "_", 2)
		if len(parts) == 2 {
			prefix, field := parts[0], parts[1]
			if _, isRelation := relationAliases[prefix]; isRelation {
				relationSubMaps[prefix][field] = val
				continue
			}
			if prefix == baseTableAlias {
				result[field] = val
				continue
			}
		}
		result[sqlColName] = val
	}

	for key, subMap := range relationSubMaps {
		if len(subMap) > 0 {
			result[key] = subMap
		}
	}
	return result
}

// FetchDataAndCount выполняет листинг с фильтрами, поиском, сортировкой
// и отдельным COUNT-запросом для пагинации.
func FetchDataAndCount(ctx context.Context, dbPool *pgxpool.Pool, params Params) ([]map[string]interface{}, uint64, error) {
	if params.Table == "" {
		return nil, 0, fmt.Errorf("params.Table не может быть пустым")
	}
	if params.Columns == "" {
		return nil, 0, fmt.Errorf("params.Columns не может быть пустым для таблицы %s", params.Table)
	}

	baseAlias := params.EffectiveBaseAlias()
	fromTarget := params.Table
	if baseAlias != params.Table {
		fromTarget = fmt.Sprintf("%s AS %s", params.Table, baseAlias)
	}

	builder := sq.Select(params.Columns).From(fromTarget).PlaceholderFormat(sq.Dollar)
	builder = applyQueryConditions(builder, params)
	builder = applyOrder(builder, params)

	if params.WithPg && params.Limit > 0 {
		builder = builder.Limit(params.Limit).Offset(params.Offset)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ToSql для запроса данных: %w", err)
	}

	rows, err := dbPool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db.Query ('%s'): %w", sqlQuery, err)
	}
	defer rows.Close()

	relationAliases := make(map[string]bool)
	if params.GroupRelatedFieldsByPrefix {
		for _, rel := range params.Relations {
			relationAliases[rel.EffectiveAlias()] = true
		}
	}

	resultData := make([]map[string]interface{}, 0)
	fieldDescriptions := rows.FieldDescriptions()

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, 0, fmt.Errorf("rows.Values: %w", err)
		}

		var rowMap map[string]interface{}
		if params.GroupRelatedFieldsByPrefix {
			rowMap = groupRowData(values, fieldDescriptions, baseAlias, relationAliases)
		} else {
			rowMap = make(map[string]interface{})
			for i, fd := range fieldDescriptions {
				rowMap[string(fd.Name)] = values[i]
			}
		}
		resultData = append(resultData, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows.Err: %w", err)
	}

	var total uint64
	if params.WithPg {
		countBuilder := sq.Select("COUNT(*)").From(fromTarget).PlaceholderFormat(sq.Dollar)
		countBuilder = applyQueryConditions(countBuilder, Params{
			Table:                params.Table,
			Alias:                params.Alias,
			Relations:            params.Relations,
			Filter:               params.Filter,
			Where:                params.Where,
			Search:               params.Search,
			AllowedFilterColumns: params.AllowedFilterColumns,
			AllowedSearchColumns: params.AllowedSearchColumns,
		})
		countSQL, countArgs, err := countBuilder.ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("ToSql для count-запроса: %w", err)
		}
		if err := dbPool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count-запрос ('%s'): %w", countSQL, err)
		}
	}

	return resultData, total, nil
}
