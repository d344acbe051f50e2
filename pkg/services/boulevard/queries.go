package boulevard

// GraphQL documents for the primary admin API queries. Connections follow
// the edges/node + pageInfo shape throughout.

const orderDetailsQuery = `
query OrderDetails($locationId: ID!, $query: QueryString, $first: Int, $after: String) {
  orders(locationId: $locationId, query: $query, first: $first, after: $after) {
    edges {
      node {
        id
        closedAt
        summary {
          currentSubtotal
        }
        lineGroups {
          lines {
            __typename
            id
            quantity
            currentSubtotal
            currentDiscountAmount

            ... on OrderProductLine {
              productId
              name
            }
            ... on OrderServiceLine {
              serviceId
              name
            }
            ... on OrderGratuityLine {
              id
            }
            ... on OrderAccountCreditLine {
              id
            }
          }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

const locationsQuery = `
query Locations($first: Int, $after: String) {
  locations(first: $first, after: $after) {
    edges {
      node {
        id
        name
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

const servicesQuery = `
query Services($first: Int, $after: String) {
  services(first: $first, after: $after) {
    edges {
      node {
        id
        name
        defaultPrice
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

const productsQuery = `
query Products($first: Int, $after: String) {
  products(first: $first, after: $after) {
    edges {
      node {
        id
        name
        sku
        unitPrice
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`
