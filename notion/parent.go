package notion

// ParentType discriminates the parent reference variants.
type ParentType string

const (
	ParentTypePage       ParentType = "page_id"
	ParentTypeDatabase   ParentType = "database_id"
	ParentTypeDataSource ParentType = "data_source_id"
	ParentTypeBlock      ParentType = "block_id"
	ParentTypeWorkspace  ParentType = "workspace"
)

// Parent references the container an object lives in. Exactly one ID field is
// populated, matching Type.
type Parent struct {
	Type         ParentType `json:"type,omitempty"`
	PageID       string     `json:"page_id,omitempty"`
	DatabaseID   string     `json:"database_id,omitempty"`
	DataSourceID string     `json:"data_source_id,omitempty"`
	BlockID      string     `json:"block_id,omitempty"`
	Workspace    bool       `json:"workspace,omitempty"`
}

// PageParent returns a parent reference to a page.
func PageParent(pageID string) Parent {
	return Parent{Type: ParentTypePage, PageID: pageID}
}

// DatabaseParent returns a parent reference to a database.
func DatabaseParent(databaseID string) Parent {
	return Parent{Type: ParentTypeDatabase, DatabaseID: databaseID}
}

// DataSourceParent returns a parent reference to a data source.
func DataSourceParent(dataSourceID string) Parent {
	return Parent{Type: ParentTypeDataSource, DataSourceID: dataSourceID}
}

// BlockParent returns a parent reference to a block.
func BlockParent(blockID string) Parent {
	return Parent{Type: ParentTypeBlock, BlockID: blockID}
}

// WorkspaceParent returns a workspace-level parent reference.
func WorkspaceParent() Parent {
	return Parent{Type: ParentTypeWorkspace, Workspace: true}
}

// ID returns the populated ID field, or empty for workspace parents.
func (p Parent) ID() string {
	switch p.Type {
	case ParentTypePage:
		return p.PageID
	case ParentTypeDatabase:
		return p.DatabaseID
	case ParentTypeDataSource:
		return p.DataSourceID
	case ParentTypeBlock:
		return p.BlockID
	default:
		return ""
	}
}
